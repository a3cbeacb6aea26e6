package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	domestoque "github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// MovimentacaoUseCase registra, edita e remove movimentações de forma
// transacional, com bloqueio de linha (SELECT FOR UPDATE) no item e
// Commit/Rollback. Toda escrita no cache quantidade_atual passa por aqui.
type MovimentacaoUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.MovimentacaoRepository,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// parseDataDevolucao interpreta a data prevista de devolução (AAAA-MM-DD).
func parseDataDevolucao(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	return &t, nil
}

// validar aplica as regras de criação: tipo da taxonomia fechada, quantidade
// positiva e data prevista obrigatória em RETIRADA. Tipos desconhecidos são
// rejeitados aqui para nunca chegarem ao razão.
func validar(tipo string, quantidade int, dataDevolucao *time.Time) error {
	if !entity.TipoValido(tipo) {
		return domain.ErrTipoMovimentacao
	}
	if quantidade <= 0 {
		return domain.ErrEntradaInvalida
	}
	if tipo == entity.TipoRetirada && dataDevolucao == nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// Registrar cria a movimentação e aplica seu efeito na quantidade do item,
// tudo em uma transação. Para RETIRADA, abre o registro de retirada
// temporária na mesma transação.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, usuarioID string, in dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	dataDevolucao, err := parseDataDevolucao(in.DataDevolucaoPrevista)
	if err != nil {
		return nil, err
	}
	if err := validar(in.Tipo, in.Quantidade, dataDevolucao); err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Ativo {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:                    uuid.New().String(),
		ItemID:                in.ItemID,
		Tipo:                  in.Tipo,
		Quantidade:            in.Quantidade,
		UsuarioID:             usuarioID,
		Data:                  now,
		DataDevolucaoPrevista: dataDevolucao,
		Observacao:            in.Observacao,
		CreatedAt:             now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		retiradaRepo repository.RetiradaRepository,
		_ repository.SolicitacaoRepository,
	) error {
		return registrarEmTx(movRepo, itemRepo, retiradaRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(mov), nil
}

// registrarEmTx aplica uma movimentação usando repositórios já atados à
// transação do chamador. Reusado pelo fluxo de solicitações e de devolução.
func registrarEmTx(
	movRepo repository.MovimentacaoRepository,
	itemRepo repository.ItemRepository,
	retiradaRepo repository.RetiradaRepository,
	mov *entity.Movimentacao,
) error {
	// Bloqueia a linha do item para o read-modify-write da quantidade.
	item, err := itemRepo.GetForUpdate(mov.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNaoEncontrado
	}
	novaQtd, err := domestoque.Aplicar(item.QuantidadeAtual, mov.Tipo, mov.Quantidade)
	if err != nil {
		return err
	}
	if err := itemRepo.UpdateQuantidade(item.ID, novaQtd); err != nil {
		return err
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	if mov.Tipo == entity.TipoRetirada {
		ret := &entity.RetiradaTemporaria{
			ID:                    uuid.New().String(),
			ItemID:                mov.ItemID,
			MovimentacaoID:        mov.ID,
			UsuarioID:             mov.UsuarioID,
			QuantidadeRetirada:    mov.Quantidade,
			DataRetirada:          mov.Data,
			DataPrevistaDevolucao: *mov.DataDevolucaoPrevista,
			Status:                entity.RetiradaAtiva,
			Observacao:            mov.Observacao,
		}
		if err := retiradaRepo.Create(ret); err != nil {
			return err
		}
	}
	return nil
}

// Atualizar edita uma movimentação com o protocolo estornar-e-reaplicar:
// dentro de uma única transação, o efeito antigo é revertido sobre a
// quantidade bloqueada e o novo efeito é aplicado, com uma única escrita do
// resultado. O total corrente nunca conta em dobro nem deriva.
//
// Movimentações RETIRADA/DEVOLUCAO carregam estado de devolução acoplado e
// não são editáveis por aqui; use o fluxo de devolução.
func (uc *MovimentacaoUseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if in.Tipo != entity.TipoEntrada && in.Tipo != entity.TipoSaida {
		return nil, domain.ErrTipoMovimentacao
	}
	if in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	var out *entity.Movimentacao
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		_ repository.RetiradaRepository,
		_ repository.SolicitacaoRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNaoEncontrado
		}
		if mov.Tipo == entity.TipoRetirada || mov.Tipo == entity.TipoDevolucao {
			return domain.ErrConflito
		}
		item, err := itemRepo.GetForUpdate(mov.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNaoEncontrado
		}
		qtd, err := domestoque.Reverter(item.QuantidadeAtual, mov.Tipo, mov.Quantidade)
		if err != nil {
			return err
		}
		qtd, err = domestoque.Aplicar(qtd, in.Tipo, in.Quantidade)
		if err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, qtd); err != nil {
			return err
		}
		mov.Tipo = in.Tipo
		mov.Quantidade = in.Quantidade
		mov.Observacao = in.Observacao
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		out = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(out), nil
}

// Remover estorna o efeito da movimentação e a exclui, na mesma transação.
// Mesmas restrições de tipo da edição.
func (uc *MovimentacaoUseCase) Remover(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		_ repository.RetiradaRepository,
		_ repository.SolicitacaoRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNaoEncontrado
		}
		if mov.Tipo == entity.TipoRetirada || mov.Tipo == entity.TipoDevolucao {
			return domain.ErrConflito
		}
		item, err := itemRepo.GetForUpdate(mov.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNaoEncontrado
		}
		qtd, err := domestoque.Reverter(item.QuantidadeAtual, mov.Tipo, mov.Quantidade)
		if err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, qtd); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// Listar devolve movimentações com filtros opcionais de item e período.
func (uc *MovimentacaoUseCase) Listar(itemID string, from, to *time.Time, limit, offset int) (*dto.MovimentacaoListResponse, error) {
	movs, err := uc.movRepo.List(itemID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	itens := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		itens = append(itens, *toMovimentacaoResponse(m))
	}
	return &dto.MovimentacaoListResponse{Total: len(itens), Itens: itens}, nil
}

// Recalcular refaz a quantidade do item pelo replay completo do razão e
// corrige o cache. Operação de reconciliação: o razão é a fonte de verdade.
func (uc *MovimentacaoUseCase) Recalcular(ctx context.Context, itemID string) (int, error) {
	var qtd int
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		_ repository.RetiradaRepository,
		_ repository.SolicitacaoRepository,
	) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNaoEncontrado
		}
		movs, err := movRepo.ListAllByItem(itemID)
		if err != nil {
			return err
		}
		qtd, err = domestoque.Replay(movs)
		if err != nil {
			return err
		}
		return itemRepo.UpdateQuantidade(itemID, qtd)
	})
	if err != nil {
		return 0, err
	}
	return qtd, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimentacaoResponse{
		ID:                    m.ID,
		ItemID:                m.ItemID,
		Tipo:                  m.Tipo,
		Quantidade:            m.Quantidade,
		UsuarioID:             m.UsuarioID,
		Data:                  m.Data,
		DataDevolucaoPrevista: m.DataDevolucaoPrevista,
		Observacao:            m.Observacao,
	}
}
