package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso CRUD para fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cria um fornecedor. CNPJ, quando informado, é único.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CNPJ != "" {
		existente, _ := uc.repo.GetByCNPJ(in.CNPJ)
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}
	now := time.Now()
	f := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		Contato:   in.Contato,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Buscar devolve um fornecedor por ID.
func (uc *FornecedorUseCase) Buscar(id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toFornecedorResponse(f), nil
}

// Atualizar edita os dados do fornecedor.
func (uc *FornecedorUseCase) Atualizar(id string, in dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrEntradaInvalida
		}
		f.Nome = *in.Nome
	}
	if in.CNPJ != nil && *in.CNPJ != f.CNPJ {
		if *in.CNPJ != "" {
			existente, _ := uc.repo.GetByCNPJ(*in.CNPJ)
			if existente != nil && existente.ID != id {
				return nil, domain.ErrDuplicado
			}
		}
		f.CNPJ = *in.CNPJ
	}
	if in.Contato != nil {
		f.Contato = *in.Contato
	}
	if in.Telefone != nil {
		f.Telefone = *in.Telefone
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Listar lista fornecedores com busca textual e paginação.
func (uc *FornecedorUseCase) Listar(busca string, limit, offset int) (*dto.FornecedorListResponse, error) {
	list, err := uc.repo.List(busca, limit, offset)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		itens = append(itens, *toFornecedorResponse(f))
	}
	return &dto.FornecedorListResponse{Total: len(itens), Itens: itens}, nil
}

// Desativar marca o fornecedor como inativo, preservando o vínculo histórico
// com os itens.
func (uc *FornecedorUseCase) Desativar(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Desativar(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Contato:   f.Contato,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Ativo:     f.Ativo,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
