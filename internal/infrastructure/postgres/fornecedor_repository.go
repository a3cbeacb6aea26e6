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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorColumns = `id, nome, cnpj, contato, telefone, email, ativo, created_at, updated_at`

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL
// (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Contato, &f.Telefone, &f.Email,
		&f.Ativo, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste um fornecedor.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, nome, cnpj, contato, telefone, email, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Contato, f.Telefone, f.Email, f.Ativo, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	f, err := scanFornecedor(r.q.QueryRow(context.Background(),
		`SELECT `+fornecedorColumns+` FROM fornecedores WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// GetByCNPJ obtém um fornecedor pelo CNPJ.
func (r *FornecedorRepo) GetByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	f, err := scanFornecedor(r.q.QueryRow(context.Background(),
		`SELECT `+fornecedorColumns+` FROM fornecedores WHERE cnpj = $1`, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor by cnpj: %w", err)
	}
	return f, nil
}

// Update atualiza os dados do fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET nome = $2, cnpj = $3, contato = $4, telefone = $5, email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Contato, f.Telefone, f.Email, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// List lista fornecedores com busca textual por nome e paginação.
func (r *FornecedorRepo) List(busca string, limit, offset int) ([]*entity.Fornecedor, error) {
	query := `
		SELECT ` + fornecedorColumns + `
		FROM fornecedores
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		ORDER BY nome
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, busca, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	out := []*entity.Fornecedor{}
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Desativar marca o fornecedor como inativo.
func (r *FornecedorRepo) Desativar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE fornecedores SET ativo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desativar fornecedor: %w", err)
	}
	return nil
}
