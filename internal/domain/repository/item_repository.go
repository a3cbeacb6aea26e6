package repository

import "github.com/rlourenzo/almoxarifado-api/internal/domain/entity"

// ItemRepository define a porta de persistência para Item.
// QuantidadeAtual só é escrita via UpdateQuantidade, dentro da transação que
// registra a movimentação correspondente; Update nunca toca nesse campo.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCodigo(codigo string) (*entity.Item, error)
	// GetForUpdate bloqueia a linha do item (SELECT FOR UPDATE) para o
	// read-modify-write da quantidade dentro da transação.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantidade(id string, quantidade int) error
	List(busca string, apenasAtivos bool, limit, offset int) ([]*entity.Item, error)
	ListAtivos() ([]*entity.Item, error)
	Desativar(id string) error
}
