package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// SolicitacaoUseCase conduz o fluxo de pedidos de material:
// PENDENTE -> APROVADA | RECUSADA -> ATENDIDA. O estoque só é tocado no
// atendimento, quando a solicitação vira movimentação (SAIDA ou RETIRADA).
type SolicitacaoUseCase struct {
	txRunner        TxRunner
	solicitacaoRepo repository.SolicitacaoRepository
	itemRepo        repository.ItemRepository
}

// NewSolicitacaoUseCase constrói o caso de uso.
func NewSolicitacaoUseCase(
	txRunner TxRunner,
	solicitacaoRepo repository.SolicitacaoRepository,
	itemRepo repository.ItemRepository,
) *SolicitacaoUseCase {
	return &SolicitacaoUseCase{txRunner: txRunner, solicitacaoRepo: solicitacaoRepo, itemRepo: itemRepo}
}

// Criar abre uma solicitação PENDENTE. Não mexe no estoque: a disponibilidade
// é checada de verdade no atendimento, sob bloqueio de linha.
func (uc *SolicitacaoUseCase) Criar(ctx context.Context, solicitanteID string, in dto.CriarSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	if in.Tipo != entity.SolicitacaoConsumo && in.Tipo != entity.SolicitacaoTemporaria {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	dataDevolucao, err := parseDataDevolucao(in.DataDevolucaoPrevista)
	if err != nil {
		return nil, err
	}
	if in.Tipo == entity.SolicitacaoTemporaria && dataDevolucao == nil {
		return nil, domain.ErrEntradaInvalida
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Ativo {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	sol := &entity.Solicitacao{
		ID:                    uuid.New().String(),
		ItemID:                in.ItemID,
		SolicitanteID:         solicitanteID,
		Quantidade:            in.Quantidade,
		Tipo:                  in.Tipo,
		Status:                entity.SolicitacaoPendente,
		DataDevolucaoPrevista: dataDevolucao,
		Observacao:            in.Observacao,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.solicitacaoRepo.Create(sol); err != nil {
		return nil, err
	}
	return toSolicitacaoResponse(sol), nil
}

// Aprovar move PENDENTE -> APROVADA.
func (uc *SolicitacaoUseCase) Aprovar(id string) (*dto.SolicitacaoResponse, error) {
	return uc.mudarStatus(id, entity.SolicitacaoAprovada)
}

// Recusar move PENDENTE -> RECUSADA.
func (uc *SolicitacaoUseCase) Recusar(id string) (*dto.SolicitacaoResponse, error) {
	return uc.mudarStatus(id, entity.SolicitacaoRecusada)
}

func (uc *SolicitacaoUseCase) mudarStatus(id, novo string) (*dto.SolicitacaoResponse, error) {
	sol, err := uc.solicitacaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if sol.Status != entity.SolicitacaoPendente {
		return nil, domain.ErrConflito
	}
	sol.Status = novo
	sol.UpdatedAt = time.Now()
	if err := uc.solicitacaoRepo.Update(sol); err != nil {
		return nil, err
	}
	return toSolicitacaoResponse(sol), nil
}

// Atender converte uma solicitação APROVADA na movimentação correspondente
// (CONSUMO -> SAIDA, TEMPORARIA -> RETIRADA) e marca ATENDIDA, tudo em uma
// transação. Se o estoque não cobrir a quantidade, nada muda e a solicitação
// segue APROVADA.
func (uc *SolicitacaoUseCase) Atender(ctx context.Context, id, atendidoPorID string) (*dto.SolicitacaoResponse, error) {
	var out *entity.Solicitacao
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		retiradaRepo repository.RetiradaRepository,
		solicitacaoRepo repository.SolicitacaoRepository,
	) error {
		sol, err := solicitacaoRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sol == nil {
			return domain.ErrNaoEncontrado
		}
		if sol.Status != entity.SolicitacaoAprovada {
			return domain.ErrConflito
		}

		tipo := entity.TipoSaida
		if sol.Tipo == entity.SolicitacaoTemporaria {
			tipo = entity.TipoRetirada
		}
		now := time.Now()
		mov := &entity.Movimentacao{
			ID:                    uuid.New().String(),
			ItemID:                sol.ItemID,
			Tipo:                  tipo,
			Quantidade:            sol.Quantidade,
			UsuarioID:             sol.SolicitanteID,
			Data:                  now,
			DataDevolucaoPrevista: sol.DataDevolucaoPrevista,
			Observacao:            sol.Observacao,
			CreatedAt:             now,
		}
		if err := registrarEmTx(movRepo, itemRepo, retiradaRepo, mov); err != nil {
			return err
		}

		sol.Status = entity.SolicitacaoAtendida
		sol.MovimentacaoID = mov.ID
		sol.UpdatedAt = now
		if err := solicitacaoRepo.Update(sol); err != nil {
			return err
		}
		out = sol
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSolicitacaoResponse(out), nil
}

// Buscar devolve uma solicitação. Solicitantes só enxergam as próprias.
func (uc *SolicitacaoUseCase) Buscar(id, usuarioID, role string) (*dto.SolicitacaoResponse, error) {
	sol, err := uc.solicitacaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if role != entity.RoleGestor && sol.SolicitanteID != usuarioID {
		return nil, domain.ErrAcessoNegado
	}
	return toSolicitacaoResponse(sol), nil
}

// Listar devolve solicitações. Gestores veem todas; solicitantes, as próprias.
func (uc *SolicitacaoUseCase) Listar(usuarioID, role, status string, limit, offset int) (*dto.SolicitacaoListResponse, error) {
	solicitanteID := usuarioID
	if role == entity.RoleGestor {
		solicitanteID = ""
	}
	sols, err := uc.solicitacaoRepo.List(solicitanteID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.SolicitacaoResponse, 0, len(sols))
	for _, s := range sols {
		itens = append(itens, *toSolicitacaoResponse(s))
	}
	return &dto.SolicitacaoListResponse{Total: len(itens), Itens: itens}, nil
}

func toSolicitacaoResponse(s *entity.Solicitacao) *dto.SolicitacaoResponse {
	if s == nil {
		return nil
	}
	return &dto.SolicitacaoResponse{
		ID:                    s.ID,
		ItemID:                s.ItemID,
		SolicitanteID:         s.SolicitanteID,
		Quantidade:            s.Quantidade,
		Tipo:                  s.Tipo,
		Status:                s.Status,
		DataDevolucaoPrevista: s.DataDevolucaoPrevista,
		Observacao:            s.Observacao,
		MovimentacaoID:        s.MovimentacaoID,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
