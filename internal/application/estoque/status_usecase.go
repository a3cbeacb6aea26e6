package estoque

import (
	"sort"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	domestoque "github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// StatusUseCase monta os feeds de alerta e status a partir do classificador.
// Somente leitura; o status é efêmero e recalculado a cada chamada.
type StatusUseCase struct {
	itemRepo repository.ItemRepository
	limites  domestoque.Limites
}

// NewStatusUseCase constrói o caso de uso com os limites vindos da configuração.
func NewStatusUseCase(itemRepo repository.ItemRepository, limites domestoque.Limites) *StatusUseCase {
	return &StatusUseCase{itemRepo: itemRepo, limites: limites}
}

func (uc *StatusUseCase) classificarItem(item *entity.Item) domestoque.Status {
	return domestoque.Classificar(uc.limites, item.QuantidadeAtual, item.EstoqueMinimo, item.EstoqueMaximo)
}

func toStatusRecord(item *entity.Item, s domestoque.Status) dto.StatusRecord {
	return dto.StatusRecord{
		Status:          s.Status,
		ItemID:          item.ID,
		ItemCodigo:      item.Codigo,
		ItemDescricao:   item.Descricao,
		QuantidadeAtual: s.QuantidadeAtual,
		EstoqueMinimo:   s.EstoqueMinimo,
		EstoqueMaximo:   s.EstoqueMaximo,
		Percentual:      s.Percentual,
		RequerAcao:      s.RequerAcao,
		Mensagem:        s.Mensagem,
	}
}

// StatusItem devolve o status de estoque de um item específico.
func (uc *StatusUseCase) StatusItem(itemID string) (*dto.StatusRecord, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	rec := toStatusRecord(item, uc.classificarItem(item))
	return &rec, nil
}

// Alertas devolve todos os itens que requerem ação, com resumo agregado.
func (uc *StatusUseCase) Alertas() (*dto.AlertasResponse, error) {
	itens, err := uc.itemRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	out := dto.AlertasResponse{Alertas: []dto.StatusRecord{}}
	for _, item := range itens {
		s := uc.classificarItem(item)
		if !s.RequerAcao {
			continue
		}
		out.Alertas = append(out.Alertas, toStatusRecord(item, s))
		out.Resumo.TotalAlertas++
		switch s.Status {
		case domestoque.StatusCritico:
			out.Resumo.Criticos++
		case domestoque.StatusBaixo:
			out.Resumo.Baixos++
		case domestoque.StatusAlto:
			out.Resumo.Altos++
		}
	}
	return &out, nil
}

// Criticos devolve apenas os itens em situação crítica.
func (uc *StatusUseCase) Criticos() (*dto.CriticosResponse, error) {
	itens, err := uc.itemRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	out := dto.CriticosResponse{ItensCriticos: []dto.StatusRecord{}}
	for _, item := range itens {
		s := uc.classificarItem(item)
		if s.Status != domestoque.StatusCritico {
			continue
		}
		out.ItensCriticos = append(out.ItensCriticos, toStatusRecord(item, s))
	}
	out.Total = len(out.ItensCriticos)
	return &out, nil
}

// Reposicao devolve os itens que precisam de reposição (crítico ou baixo),
// com quantidade sugerida e nível de urgência, ordenados do mais urgente
// para o menos urgente.
func (uc *StatusUseCase) Reposicao() (*dto.ReposicaoResponse, error) {
	itens, err := uc.itemRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	out := dto.ReposicaoResponse{Itens: []dto.StatusRecord{}}
	for _, item := range itens {
		s := uc.classificarItem(item)
		if s.Status != domestoque.StatusCritico && s.Status != domestoque.StatusBaixo {
			continue
		}
		rec := toStatusRecord(item, s)
		urgencia := s.NivelUrgencia
		reposicao := s.QuantidadeReposicao
		rec.NivelUrgencia = &urgencia
		rec.QuantidadeReposicaoSugerida = &reposicao
		out.Itens = append(out.Itens, rec)
	}
	sort.SliceStable(out.Itens, func(i, j int) bool {
		return *out.Itens[i].NivelUrgencia > *out.Itens[j].NivelUrgencia
	})
	out.Total = len(out.Itens)
	return &out, nil
}
