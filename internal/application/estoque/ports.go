package estoque

import (
	"context"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante atomicidade entre a escrita
// no razão de movimentações e a atualização da quantidade do item: uma queda
// entre estorno e reaplicação nunca é observável.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		itemRepo repository.ItemRepository,
		retiradaRepo repository.RetiradaRepository,
		solicitacaoRepo repository.SolicitacaoRepository,
	) error) error
}
