package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, codigo, descricao, categoria, unidade_medida, valor_unitario,
		COALESCE(fornecedor_id::text, ''), estoque_minimo, estoque_maximo, quantidade_atual, ativo, created_at, updated_at`

// ItemRepo implementação de ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador de itens. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.Codigo, &i.Descricao, &i.Categoria, &i.UnidadeMedida, &i.ValorUnitario,
		&i.FornecedorID, &i.EstoqueMinimo, &i.EstoqueMaximo, &i.QuantidadeAtual,
		&i.Ativo, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste um novo item. Nasce com quantidade zero.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO itens (id, codigo, descricao, categoria, unidade_medida, valor_unitario, fornecedor_id, estoque_minimo, estoque_maximo, quantidade_atual, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Codigo, item.Descricao, item.Categoria, item.UnidadeMedida,
		item.ValorUnitario, item.FornecedorID, item.EstoqueMinimo, item.EstoqueMaximo,
		item.QuantidadeAtual, item.Ativo, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM itens WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetByCodigo obtém um item pelo código único.
func (r *ItemRepo) GetByCodigo(codigo string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM itens WHERE codigo = $1`, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by codigo: %w", err)
	}
	return item, nil
}

// GetForUpdate obtém o item e bloqueia a linha (SELECT FOR UPDATE) para o
// read-modify-write da quantidade dentro da transação.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM itens WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

// Update atualiza os dados cadastrais. quantidade_atual fica de fora: só muda
// via UpdateQuantidade, dentro da transação que registra a movimentação.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE itens SET descricao = $2, categoria = $3, unidade_medida = $4, valor_unitario = $5,
			fornecedor_id = NULLIF($6, '')::uuid, estoque_minimo = $7, estoque_maximo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Descricao, item.Categoria, item.UnidadeMedida, item.ValorUnitario,
		item.FornecedorID, item.EstoqueMinimo, item.EstoqueMaximo, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantidade grava a nova quantidade do item.
func (r *ItemRepo) UpdateQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE itens SET quantidade_atual = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List lista itens com busca textual em código/descrição e paginação.
func (r *ItemRepo) List(busca string, apenasAtivos bool, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM itens
		WHERE ($1 = '' OR codigo ILIKE '%' || $1 || '%' OR descricao ILIKE '%' || $1 || '%')
		  AND (NOT $2 OR ativo)
		ORDER BY codigo
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, busca, apenasAtivos, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	return collectItens(rows)
}

// ListAtivos devolve todos os itens ativos, sem paginação, para os feeds de
// status e o relatório.
func (r *ItemRepo) ListAtivos() ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM itens WHERE ativo ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list itens ativos: %w", err)
	}
	defer rows.Close()
	return collectItens(rows)
}

func collectItens(rows pgx.Rows) ([]*entity.Item, error) {
	out := []*entity.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Desativar marca o item como inativo (soft delete; o razão permanece).
func (r *ItemRepo) Desativar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE itens SET ativo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desativar item: %w", err)
	}
	return nil
}
