package repository

import "github.com/rlourenzo/almoxarifado-api/internal/domain/entity"

// UserRepository define a porta de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
