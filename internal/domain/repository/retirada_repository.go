package repository

import (
	"time"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

// RetiradaRepository define a porta de persistência para retiradas temporárias.
type RetiradaRepository interface {
	Create(r *entity.RetiradaTemporaria) error
	GetByID(id string) (*entity.RetiradaTemporaria, error)
	// GetForUpdate bloqueia a linha da retirada durante a devolução.
	GetForUpdate(id string) (*entity.RetiradaTemporaria, error)
	Update(r *entity.RetiradaTemporaria) error
	// List filtra por status; atrasadasAte != nil limita a retiradas não
	// devolvidas com data prevista anterior ao instante dado.
	List(status string, atrasadasAte *time.Time, limit, offset int) ([]*entity.RetiradaTemporaria, error)
}
