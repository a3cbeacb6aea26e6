package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para itens do almoxarifado. A quantidade em
// estoque nunca é editada por aqui: só muda via movimentações.
type ItemUseCase struct {
	repo           repository.ItemRepository
	fornecedorRepo repository.FornecedorRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(repo repository.ItemRepository, fornecedorRepo repository.FornecedorRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, fornecedorRepo: fornecedorRepo}
}

// Criar cria um item. Nasce com quantidade zero: o estoque inicial entra pelo
// razão, via movimentação ENTRADA.
func (uc *ItemUseCase) Criar(in dto.CriarItemRequest) (*dto.ItemResponse, error) {
	if in.Codigo == "" || in.Descricao == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.EstoqueMinimo < 0 || in.EstoqueMaximo < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.ValorUnitario.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.repo.GetByCodigo(in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	if in.FornecedorID != "" {
		f, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Codigo:          in.Codigo,
		Descricao:       in.Descricao,
		Categoria:       in.Categoria,
		UnidadeMedida:   in.UnidadeMedida,
		ValorUnitario:   in.ValorUnitario,
		FornecedorID:    in.FornecedorID,
		EstoqueMinimo:   in.EstoqueMinimo,
		EstoqueMaximo:   in.EstoqueMaximo,
		QuantidadeAtual: 0,
		Ativo:           true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Buscar devolve um item por ID.
func (uc *ItemUseCase) Buscar(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toItemResponse(item), nil
}

// Atualizar edita os dados cadastrais do item. Não há caminho para alterar
// quantidade_atual: o DTO não tem o campo e o repositório não o escreve.
func (uc *ItemUseCase) Atualizar(id string, in dto.AtualizarItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Descricao != nil {
		item.Descricao = *in.Descricao
	}
	if in.Categoria != nil {
		item.Categoria = *in.Categoria
	}
	if in.UnidadeMedida != nil {
		item.UnidadeMedida = *in.UnidadeMedida
	}
	if in.ValorUnitario != nil {
		if in.ValorUnitario.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		item.ValorUnitario = *in.ValorUnitario
	}
	if in.FornecedorID != nil {
		if *in.FornecedorID != "" {
			f, err := uc.fornecedorRepo.GetByID(*in.FornecedorID)
			if err != nil {
				return nil, err
			}
			if f == nil {
				return nil, domain.ErrNaoEncontrado
			}
		}
		item.FornecedorID = *in.FornecedorID
	}
	if in.EstoqueMinimo != nil {
		if *in.EstoqueMinimo < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		item.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.EstoqueMaximo != nil {
		if *in.EstoqueMaximo < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		item.EstoqueMaximo = *in.EstoqueMaximo
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Listar lista itens com busca textual e paginação.
func (uc *ItemUseCase) Listar(busca string, apenasAtivos bool, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(busca, apenasAtivos, limit, offset)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		itens = append(itens, *toItemResponse(i))
	}
	return &dto.ItemListResponse{Total: len(itens), Itens: itens}, nil
}

// Desativar marca o item como inativo. O histórico de movimentações permanece:
// por isso não existe exclusão física.
func (uc *ItemUseCase) Desativar(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Desativar(id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:              i.ID,
		Codigo:          i.Codigo,
		Descricao:       i.Descricao,
		Categoria:       i.Categoria,
		UnidadeMedida:   i.UnidadeMedida,
		ValorUnitario:   i.ValorUnitario,
		FornecedorID:    i.FornecedorID,
		EstoqueMinimo:   i.EstoqueMinimo,
		EstoqueMaximo:   i.EstoqueMaximo,
		QuantidadeAtual: i.QuantidadeAtual,
		ValorTotal:      i.ValorTotalEstoque(),
		Ativo:           i.Ativo,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
