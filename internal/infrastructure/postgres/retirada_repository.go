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

var _ repository.RetiradaRepository = (*RetiradaRepo)(nil)

const retiradaColumns = `id, item_id, movimentacao_id, usuario_id, quantidade_retirada, quantidade_devolvida,
		data_retirada, data_prevista_devolucao, data_devolucao, status, observacao, COALESCE(setor_destino, '')`

// RetiradaRepo implementação de RetiradaRepository sobre PostgreSQL (usável
// com pool ou tx).
type RetiradaRepo struct {
	q Querier
}

// NewRetiradaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRetiradaRepository(q Querier) *RetiradaRepo {
	return &RetiradaRepo{q: q}
}

func scanRetirada(row pgx.Row) (*entity.RetiradaTemporaria, error) {
	var ret entity.RetiradaTemporaria
	err := row.Scan(
		&ret.ID, &ret.ItemID, &ret.MovimentacaoID, &ret.UsuarioID,
		&ret.QuantidadeRetirada, &ret.QuantidadeDevolvida,
		&ret.DataRetirada, &ret.DataPrevistaDevolucao, &ret.DataDevolucao,
		&ret.Status, &ret.Observacao, &ret.SetorDestino,
	)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// Create persiste uma retirada temporária.
func (r *RetiradaRepo) Create(ret *entity.RetiradaTemporaria) error {
	query := `
		INSERT INTO retiradas (id, item_id, movimentacao_id, usuario_id, quantidade_retirada, quantidade_devolvida, data_retirada, data_prevista_devolucao, data_devolucao, status, observacao, setor_destino)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.ItemID, ret.MovimentacaoID, ret.UsuarioID,
		ret.QuantidadeRetirada, ret.QuantidadeDevolvida,
		ret.DataRetirada, ret.DataPrevistaDevolucao, ret.DataDevolucao,
		ret.Status, ret.Observacao, ret.SetorDestino,
	)
	if err != nil {
		return fmt.Errorf("insert retirada: %w", err)
	}
	return nil
}

// GetByID obtém uma retirada por ID.
func (r *RetiradaRepo) GetByID(id string) (*entity.RetiradaTemporaria, error) {
	ret, err := scanRetirada(r.q.QueryRow(context.Background(),
		`SELECT `+retiradaColumns+` FROM retiradas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retirada: %w", err)
	}
	return ret, nil
}

// GetForUpdate obtém a retirada e bloqueia a linha durante a devolução.
func (r *RetiradaRepo) GetForUpdate(id string) (*entity.RetiradaTemporaria, error) {
	ret, err := scanRetirada(r.q.QueryRow(context.Background(),
		`SELECT `+retiradaColumns+` FROM retiradas WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retirada for update: %w", err)
	}
	return ret, nil
}

// Update grava o progresso da devolução.
func (r *RetiradaRepo) Update(ret *entity.RetiradaTemporaria) error {
	query := `
		UPDATE retiradas SET quantidade_devolvida = $2, data_devolucao = $3, status = $4, observacao = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.QuantidadeDevolvida, ret.DataDevolucao, ret.Status, ret.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update retirada: %w", err)
	}
	return nil
}

// List lista retiradas, com filtro opcional de status e de atraso.
func (r *RetiradaRepo) List(status string, atrasadasAte *time.Time, limit, offset int) ([]*entity.RetiradaTemporaria, error) {
	query := `
		SELECT ` + retiradaColumns + `
		FROM retiradas
		WHERE ($1 = '' OR status = $1)
		  AND ($2::timestamptz IS NULL OR (status <> 'D' AND data_prevista_devolucao < $2))
		ORDER BY data_prevista_devolucao
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, status, atrasadasAte, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list retiradas: %w", err)
	}
	defer rows.Close()
	out := []*entity.RetiradaTemporaria{}
	for rows.Next() {
		ret, err := scanRetirada(rows)
		if err != nil {
			return nil, fmt.Errorf("scan retirada: %w", err)
		}
		out = append(out, ret)
	}
	return out, rows.Err()
}
