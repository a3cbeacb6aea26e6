package entity

import "time"

// Perfis válidos para User.
const (
	RoleGestor      = "gestor"      // gerencia o almoxarifado (itens, movimentações, relatórios)
	RoleSolicitante = "solicitante" // abre solicitações e acompanha as próprias
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	Nome         string
	Role         string // gestor, solicitante
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
