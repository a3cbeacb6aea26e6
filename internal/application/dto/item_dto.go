package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarItemRequest body de POST /api/itens. O item nasce com quantidade zero;
// estoque inicial entra pelo razão, via movimentação ENTRADA.
type CriarItemRequest struct {
	Codigo        string          `json:"codigo"`
	Descricao     string          `json:"descricao"`
	Categoria     string          `json:"categoria,omitempty"`
	UnidadeMedida string          `json:"unidade_medida"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	FornecedorID  string          `json:"fornecedor_id,omitempty"`
	EstoqueMinimo int             `json:"estoque_minimo"`
	EstoqueMaximo int             `json:"estoque_maximo"`
}

// AtualizarItemRequest body de PUT /api/itens/:id. Não há campo de quantidade:
// o cache quantidade_atual só muda pela aplicação de movimentações.
type AtualizarItemRequest struct {
	Descricao     *string          `json:"descricao,omitempty"`
	Categoria     *string          `json:"categoria,omitempty"`
	UnidadeMedida *string          `json:"unidade_medida,omitempty"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario,omitempty"`
	FornecedorID  *string          `json:"fornecedor_id,omitempty"`
	EstoqueMinimo *int             `json:"estoque_minimo,omitempty"`
	EstoqueMaximo *int             `json:"estoque_maximo,omitempty"`
}

// ItemResponse representação de um item na API.
type ItemResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"`
	Descricao       string          `json:"descricao"`
	Categoria       string          `json:"categoria,omitempty"`
	UnidadeMedida   string          `json:"unidade_medida"`
	ValorUnitario   decimal.Decimal `json:"valor_unitario"`
	FornecedorID    string          `json:"fornecedor_id,omitempty"`
	EstoqueMinimo   int             `json:"estoque_minimo"`
	EstoqueMaximo   int             `json:"estoque_maximo"`
	QuantidadeAtual int             `json:"quantidade_atual"`
	ValorTotal      decimal.Decimal `json:"valor_total_estoque"`
	Ativo           bool            `json:"ativo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemListResponse listagem paginada de itens.
type ItemListResponse struct {
	Total int            `json:"total"`
	Itens []ItemResponse `json:"itens"`
}
