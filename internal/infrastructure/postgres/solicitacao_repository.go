package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

var _ repository.SolicitacaoRepository = (*SolicitacaoRepo)(nil)

const solicitacaoColumns = `id, item_id, solicitante_id, quantidade, tipo, status,
		data_devolucao_prevista, observacao, COALESCE(movimentacao_id::text, ''), created_at, updated_at`

// SolicitacaoRepo implementação de SolicitacaoRepository sobre PostgreSQL
// (usável com pool ou tx).
type SolicitacaoRepo struct {
	q Querier
}

// NewSolicitacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSolicitacaoRepository(q Querier) *SolicitacaoRepo {
	return &SolicitacaoRepo{q: q}
}

func scanSolicitacao(row pgx.Row) (*entity.Solicitacao, error) {
	var s entity.Solicitacao
	err := row.Scan(
		&s.ID, &s.ItemID, &s.SolicitanteID, &s.Quantidade, &s.Tipo, &s.Status,
		&s.DataDevolucaoPrevista, &s.Observacao, &s.MovimentacaoID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste uma solicitação.
func (r *SolicitacaoRepo) Create(s *entity.Solicitacao) error {
	query := `
		INSERT INTO solicitacoes (id, item_id, solicitante_id, quantidade, tipo, status, data_devolucao_prevista, observacao, movimentacao_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ItemID, s.SolicitanteID, s.Quantidade, s.Tipo, s.Status,
		s.DataDevolucaoPrevista, s.Observacao, s.MovimentacaoID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solicitacao: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID.
func (r *SolicitacaoRepo) GetByID(id string) (*entity.Solicitacao, error) {
	s, err := scanSolicitacao(r.q.QueryRow(context.Background(),
		`SELECT `+solicitacaoColumns+` FROM solicitacoes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitacao: %w", err)
	}
	return s, nil
}

// Update grava a transição de status e o vínculo com a movimentação gerada.
func (r *SolicitacaoRepo) Update(s *entity.Solicitacao) error {
	query := `
		UPDATE solicitacoes SET status = $2, movimentacao_id = NULLIF($3, '')::uuid, observacao = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Status, s.MovimentacaoID, s.Observacao, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update solicitacao: %w", err)
	}
	return nil
}

// List filtra por solicitante e/ou status; vazios = sem filtro.
func (r *SolicitacaoRepo) List(solicitanteID, status string, limit, offset int) ([]*entity.Solicitacao, error) {
	query := `
		SELECT ` + solicitacaoColumns + `
		FROM solicitacoes
		WHERE ($1 = '' OR solicitante_id = NULLIF($1, '')::uuid)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, solicitanteID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitacoes: %w", err)
	}
	defer rows.Close()
	out := []*entity.Solicitacao{}
	for rows.Next() {
		s, err := scanSolicitacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitacao: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
