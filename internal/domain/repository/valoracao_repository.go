package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ValoracaoRepository consultas de leitura do motor de valoração histórica.
// Nenhuma consulta depende do cache quantidade_atual: tudo é replay do razão.
type ValoracaoRepository interface {
	// ValorEstoqueEm dobra todas as movimentações com data <= corte no total
	// monetário assinado do estoque. categoria vazia = todas.
	ValorEstoqueEm(ctx context.Context, corte time.Time, categoria string) (decimal.Decimal, error)
	// ComprasNoPeriodo soma quantidade × valor unitário das ENTRADAs com data
	// dentro de [inicio, fim].
	ComprasNoPeriodo(ctx context.Context, inicio, fim time.Time, categoria string) (decimal.Decimal, error)
	// Categorias lista as categorias distintas não vazias dos itens.
	Categorias(ctx context.Context) ([]string, error)
}
