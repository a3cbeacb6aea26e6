package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

// ValorMovimento devolve a contribuição monetária assinada de uma
// movimentação para a valoração do estoque:
//
//	ENTRADA, DEVOLUCAO  → +quantidade × valor unitário
//	SAIDA, RETIRADA     → -quantidade × valor unitário
//	tipo desconhecido   → zero (padrão defensivo, nunca falha)
//
// A valoração histórica é um replay completo do razão até a data de corte,
// independente do cache quantidade_atual: permanece correta mesmo que o
// cache tenha divergido por um defeito.
func ValorMovimento(tipo string, quantidade int, valorUnitario decimal.Decimal) decimal.Decimal {
	valor := decimal.NewFromInt(int64(quantidade)).Mul(valorUnitario)
	switch tipo {
	case entity.TipoEntrada, entity.TipoDevolucao:
		return valor
	case entity.TipoSaida, entity.TipoRetirada:
		return valor.Neg()
	}
	return decimal.Zero
}

// MovimentoValorado é uma movimentação acompanhada do valor unitário do
// item, como sai do razão para fins de valoração.
type MovimentoValorado struct {
	Tipo          string
	Quantidade    int
	ValorUnitario decimal.Decimal
}

// ValorEstoque dobra um conjunto de movimentações valoradas no total
// monetário assinado. Mesma aritmética do fold em SQL do repositório;
// mantida aqui como referência executável da regra e para os testes da
// identidade do relatório periódico.
func ValorEstoque(movs []MovimentoValorado) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		total = total.Add(ValorMovimento(m.Tipo, m.Quantidade, m.ValorUnitario))
	}
	return total
}
