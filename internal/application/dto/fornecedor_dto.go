package dto

import "time"

// CriarFornecedorRequest body de POST /api/fornecedores.
type CriarFornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj,omitempty"`
	Contato  string `json:"contato,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// AtualizarFornecedorRequest body de PUT /api/fornecedores/:id.
type AtualizarFornecedorRequest struct {
	Nome     *string `json:"nome,omitempty"`
	CNPJ     *string `json:"cnpj,omitempty"`
	Contato  *string `json:"contato,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// FornecedorResponse representação de um fornecedor na API.
type FornecedorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Contato   string    `json:"contato,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FornecedorListResponse listagem paginada de fornecedores.
type FornecedorListResponse struct {
	Total int                  `json:"total"`
	Itens []FornecedorResponse `json:"itens"`
}
