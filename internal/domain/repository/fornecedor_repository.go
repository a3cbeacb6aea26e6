package repository

import "github.com/rlourenzo/almoxarifado-api/internal/domain/entity"

// FornecedorRepository define a porta de persistência para Fornecedor.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	GetByCNPJ(cnpj string) (*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	List(busca string, limit, offset int) ([]*entity.Fornecedor, error)
	Desativar(id string) error
}
