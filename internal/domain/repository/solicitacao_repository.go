package repository

import "github.com/rlourenzo/almoxarifado-api/internal/domain/entity"

// SolicitacaoRepository define a porta de persistência para solicitações de material.
type SolicitacaoRepository interface {
	Create(s *entity.Solicitacao) error
	GetByID(id string) (*entity.Solicitacao, error)
	Update(s *entity.Solicitacao) error
	// List filtra por solicitante e/ou status; vazios = sem filtro.
	List(solicitanteID, status string, limit, offset int) ([]*entity.Solicitacao, error)
}
