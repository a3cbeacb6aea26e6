package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoColumns = `id, item_id, tipo, quantidade, usuario_id, data, data_devolucao_prevista, observacao, created_at`

// MovimentacaoRepo implementação do razão de movimentações sobre PostgreSQL
// (usável com pool ou tx).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

func scanMovimentacao(row pgx.Row) (*entity.Movimentacao, error) {
	var m entity.Movimentacao
	err := row.Scan(
		&m.ID, &m.ItemID, &m.Tipo, &m.Quantidade, &m.UsuarioID,
		&m.Data, &m.DataDevolucaoPrevista, &m.Observacao, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste um lançamento no razão.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, item_id, tipo, quantidade, usuario_id, data, data_devolucao_prevista, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ItemID, mov.Tipo, mov.Quantidade, mov.UsuarioID,
		mov.Data, mov.DataDevolucaoPrevista, mov.Observacao, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	mov, err := scanMovimentacao(r.q.QueryRow(context.Background(),
		`SELECT `+movimentacaoColumns+` FROM movimentacoes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return mov, nil
}

// Update grava tipo, quantidade e observação editados. data permanece a
// original: a posição temporal do lançamento no razão não muda numa edição.
func (r *MovimentacaoRepo) Update(mov *entity.Movimentacao) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movimentacoes SET tipo = $2, quantidade = $3, observacao = $4 WHERE id = $1`,
		mov.ID, mov.Tipo, mov.Quantidade, mov.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update movimentacao: %w", err)
	}
	return nil
}

// Delete remove um lançamento do razão.
func (r *MovimentacaoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimentacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimentacao: %w", err)
	}
	return nil
}

// List lista movimentações com filtros opcionais de item e período, das mais
// recentes para as mais antigas.
func (r *MovimentacaoRepo) List(itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT ` + movimentacaoColumns + `
		FROM movimentacoes
		WHERE ($1 = '' OR item_id = NULLIF($1, '')::uuid)
		  AND ($2::timestamptz IS NULL OR data >= $2)
		  AND ($3::timestamptz IS NULL OR data <= $3)
		ORDER BY data DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, itemID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	return collectMovimentacoes(rows)
}

// ListAllByItem devolve o razão completo de um item em ordem cronológica,
// para replay.
func (r *MovimentacaoRepo) ListAllByItem(itemID string) ([]*entity.Movimentacao, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimentacaoColumns+` FROM movimentacoes WHERE item_id = $1 ORDER BY data, created_at`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes by item: %w", err)
	}
	defer rows.Close()
	return collectMovimentacoes(rows)
}

func collectMovimentacoes(rows pgx.Rows) ([]*entity.Movimentacao, error) {
	out := []*entity.Movimentacao{}
	for rows.Next() {
		mov, err := scanMovimentacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		out = append(out, mov)
	}
	return out, rows.Err()
}
