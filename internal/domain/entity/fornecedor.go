package entity

import "time"

// Fornecedor representa um fornecedor de itens do almoxarifado.
type Fornecedor struct {
	ID        string
	Nome      string
	CNPJ      string
	Contato   string
	Telefone  string
	Email     string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
