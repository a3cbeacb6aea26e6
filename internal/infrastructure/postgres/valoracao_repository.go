package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

var _ repository.ValoracaoRepository = (*ValoracaoRepo)(nil)

// ValoracaoRepo consultas de valoração histórica sobre PostgreSQL. O fold do
// razão é feito no banco com CASE/SUM; é a forma SQL da mesma aritmética de
// ValorMovimento no domínio. Nada aqui lê quantidade_atual.
type ValoracaoRepo struct {
	q Querier
}

// NewValoracaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewValoracaoRepository(q Querier) *ValoracaoRepo {
	return &ValoracaoRepo{q: q}
}

// ValorEstoqueEm dobra todas as movimentações com data <= corte no total
// monetário assinado do estoque. categoria vazia = todas.
func (r *ValoracaoRepo) ValorEstoqueEm(ctx context.Context, corte time.Time, categoria string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN m.tipo IN ('ENTRADA', 'DEVOLUCAO') THEN m.quantidade
			     ELSE -m.quantidade
			END * i.valor_unitario
		), 0)
		FROM movimentacoes m
		JOIN itens i ON i.id = m.item_id
		WHERE m.data <= $1
		  AND ($2 = '' OR i.categoria = $2)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, corte, categoria).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("valor estoque em %s: %w", corte.Format("2006-01-02"), err)
	}
	return total, nil
}

// ComprasNoPeriodo soma quantidade × valor unitário das ENTRADAs com data
// dentro de [inicio, fim].
func (r *ValoracaoRepo) ComprasNoPeriodo(ctx context.Context, inicio, fim time.Time, categoria string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(m.quantidade * i.valor_unitario), 0)
		FROM movimentacoes m
		JOIN itens i ON i.id = m.item_id
		WHERE m.tipo = 'ENTRADA'
		  AND m.data BETWEEN $1 AND $2
		  AND ($3 = '' OR i.categoria = $3)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, inicio, fim, categoria).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("compras no periodo: %w", err)
	}
	return total, nil
}

// Categorias lista as categorias distintas não vazias dos itens.
func (r *ValoracaoRepo) Categorias(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT categoria FROM itens WHERE categoria <> '' ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
