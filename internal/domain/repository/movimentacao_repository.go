package repository

import (
	"time"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

// MovimentacaoRepository define a porta de persistência para o razão de
// movimentações. O razão é logicamente append-only: Update e Delete existem
// apenas para o protocolo estornar-e-reaplicar, sempre dentro da mesma
// transação que corrige a quantidade do item.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	Update(mov *entity.Movimentacao) error
	Delete(id string) error
	List(itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movimentacao, error)
	// ListAllByItem devolve o razão completo de um item em ordem cronológica,
	// para replay.
	ListAllByItem(itemID string) ([]*entity.Movimentacao, error)
}
