package estoque

import (
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

// Máquina de transições do razão de estoque (serviço de domínio, funções puras).
//
// Tabela de transições sobre a quantidade atual do item:
//
//	ENTRADA, DEVOLUCAO  → atual += quantidade
//	SAIDA, RETIRADA     → atual -= quantidade
//
// Política estrita: nenhuma subtração pode deixar a quantidade negativa;
// quando deixaria, a operação falha com ErrEstoqueInsuficiente. A variante
// que trunca em zero esconde divergências entre razão e cache e quebra a
// invariante de replay, então não é reproduzida aqui.

// Aplicar calcula a nova quantidade do item após aplicar uma movimentação.
// Quantidade deve ser positiva; o tipo define o sinal do efeito.
func Aplicar(atual int, tipo string, quantidade int) (int, error) {
	if quantidade <= 0 {
		return atual, domain.ErrEntradaInvalida
	}
	switch tipo {
	case entity.TipoEntrada, entity.TipoDevolucao:
		return atual + quantidade, nil
	case entity.TipoSaida, entity.TipoRetirada:
		if quantidade > atual {
			return atual, domain.ErrEstoqueInsuficiente
		}
		return atual - quantidade, nil
	}
	return atual, domain.ErrTipoMovimentacao
}

// Reverter calcula a quantidade após estornar o efeito de uma movimentação
// já aplicada (transição inversa de Aplicar, mesma política de piso).
// Usada no protocolo de edição: estornar o efeito antigo antes de aplicar o
// novo, na mesma transação, para o total corrente nunca contar em dobro.
func Reverter(atual int, tipo string, quantidade int) (int, error) {
	if quantidade <= 0 {
		return atual, domain.ErrEntradaInvalida
	}
	switch tipo {
	case entity.TipoEntrada, entity.TipoDevolucao:
		if quantidade > atual {
			return atual, domain.ErrEstoqueInsuficiente
		}
		return atual - quantidade, nil
	case entity.TipoSaida, entity.TipoRetirada:
		return atual + quantidade, nil
	}
	return atual, domain.ErrTipoMovimentacao
}

// Replay refaz a quantidade de um item a partir do zero, dobrando todas as
// movimentações na ordem dada. É a fonte de verdade da invariante
// quantidade_atual == replay(movimentações); usado pela operação de
// reconciliação e pelos testes.
func Replay(movs []*entity.Movimentacao) (int, error) {
	atual := 0
	for _, m := range movs {
		novo, err := Aplicar(atual, m.Tipo, m.Quantidade)
		if err != nil {
			return atual, err
		}
		atual = novo
	}
	return atual, nil
}
