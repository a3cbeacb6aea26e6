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

// RetiradaUseCase acompanha retiradas temporárias e processa devoluções.
// A devolução é a única forma de fechar uma RETIRADA: gera a movimentação
// DEVOLUCAO correspondente e atualiza o saldo pendente na mesma transação.
type RetiradaUseCase struct {
	txRunner     TxRunner
	retiradaRepo repository.RetiradaRepository
}

// NewRetiradaUseCase constrói o caso de uso.
func NewRetiradaUseCase(txRunner TxRunner, retiradaRepo repository.RetiradaRepository) *RetiradaUseCase {
	return &RetiradaUseCase{txRunner: txRunner, retiradaRepo: retiradaRepo}
}

// Devolver registra a devolução (total ou parcial) de uma retirada temporária.
// Quantidades acima do pendente são rejeitadas; ao zerar o pendente a retirada
// passa a D com data de devolução, senão fica em P.
func (uc *RetiradaUseCase) Devolver(ctx context.Context, retiradaID, usuarioID string, in dto.DevolucaoRequest) (*dto.RetiradaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	var out *entity.RetiradaTemporaria
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		retiradaRepo repository.RetiradaRepository,
		_ repository.SolicitacaoRepository,
	) error {
		ret, err := retiradaRepo.GetForUpdate(retiradaID)
		if err != nil {
			return err
		}
		if ret == nil {
			return domain.ErrNaoEncontrado
		}
		if ret.Status == entity.RetiradaDevolvida {
			return domain.ErrConflito
		}
		if in.Quantidade > ret.QuantidadePendente() {
			return domain.ErrEntradaInvalida
		}

		now := time.Now()
		mov := &entity.Movimentacao{
			ID:         uuid.New().String(),
			ItemID:     ret.ItemID,
			Tipo:       entity.TipoDevolucao,
			Quantidade: in.Quantidade,
			UsuarioID:  usuarioID,
			Data:       now,
			Observacao: in.Observacao,
			CreatedAt:  now,
		}
		if err := registrarEmTx(movRepo, itemRepo, retiradaRepo, mov); err != nil {
			return err
		}

		ret.QuantidadeDevolvida += in.Quantidade
		if ret.QuantidadePendente() == 0 {
			ret.Status = entity.RetiradaDevolvida
			ret.DataDevolucao = &now
		} else {
			ret.Status = entity.RetiradaParcial
		}
		if err := retiradaRepo.Update(ret); err != nil {
			return err
		}
		out = ret
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRetiradaResponse(out, time.Now()), nil
}

// Buscar devolve uma retirada pelo ID.
func (uc *RetiradaUseCase) Buscar(id string) (*dto.RetiradaResponse, error) {
	ret, err := uc.retiradaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toRetiradaResponse(ret, time.Now()), nil
}

// Listar devolve retiradas, com filtro opcional de status e de atraso.
func (uc *RetiradaUseCase) Listar(status string, apenasAtrasadas bool, limit, offset int) (*dto.RetiradaListResponse, error) {
	now := time.Now()
	var atrasadasAte *time.Time
	if apenasAtrasadas {
		atrasadasAte = &now
	}
	rets, err := uc.retiradaRepo.List(status, atrasadasAte, limit, offset)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.RetiradaResponse, 0, len(rets))
	for _, r := range rets {
		itens = append(itens, *toRetiradaResponse(r, now))
	}
	return &dto.RetiradaListResponse{Total: len(itens), Itens: itens}, nil
}

func toRetiradaResponse(r *entity.RetiradaTemporaria, agora time.Time) *dto.RetiradaResponse {
	if r == nil {
		return nil
	}
	return &dto.RetiradaResponse{
		ID:                    r.ID,
		ItemID:                r.ItemID,
		MovimentacaoID:        r.MovimentacaoID,
		UsuarioID:             r.UsuarioID,
		QuantidadeRetirada:    r.QuantidadeRetirada,
		QuantidadeDevolvida:   r.QuantidadeDevolvida,
		QuantidadePendente:    r.QuantidadePendente(),
		DataRetirada:          r.DataRetirada,
		DataPrevistaDevolucao: r.DataPrevistaDevolucao,
		DataDevolucao:         r.DataDevolucao,
		Status:                r.Status,
		EstaAtrasada:          r.EstaAtrasada(agora),
		Observacao:            r.Observacao,
	}
}
