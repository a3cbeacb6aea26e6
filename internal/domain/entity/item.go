package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa um item controlado pelo almoxarifado.
// QuantidadeAtual é um cache materializado do replay das movimentações:
// só muda via aplicação de Movimentacao, nunca por edição direta.
type Item struct {
	ID              string
	Codigo          string // código único
	Descricao       string
	Categoria       string // texto livre; vazio = sem categoria
	UnidadeMedida   string
	ValorUnitario   decimal.Decimal
	FornecedorID    string // vazio = sem fornecedor
	EstoqueMinimo   int
	EstoqueMaximo   int
	QuantidadeAtual int
	Ativo           bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValorTotalEstoque calcula o valor do estoque atual deste item (qtd × valor unitário).
func (i *Item) ValorTotalEstoque() decimal.Decimal {
	return decimal.NewFromInt(int64(i.QuantidadeAtual)).Mul(i.ValorUnitario)
}
