package dto

import "time"

// CriarSolicitacaoRequest body de POST /api/solicitacoes.
// data_devolucao_prevista (AAAA-MM-DD) é obrigatória quando tipo = TEMPORARIA.
type CriarSolicitacaoRequest struct {
	ItemID                string `json:"item_id"`
	Quantidade            int    `json:"quantidade"`
	Tipo                  string `json:"tipo"`
	DataDevolucaoPrevista string `json:"data_devolucao_prevista,omitempty"`
	Observacao            string `json:"observacao,omitempty"`
}

// SolicitacaoResponse representação de uma solicitação na API.
type SolicitacaoResponse struct {
	ID                    string     `json:"id"`
	ItemID                string     `json:"item_id"`
	SolicitanteID         string     `json:"solicitante_id"`
	Quantidade            int        `json:"quantidade"`
	Tipo                  string     `json:"tipo"`
	Status                string     `json:"status"`
	DataDevolucaoPrevista *time.Time `json:"data_devolucao_prevista,omitempty"`
	Observacao            string     `json:"observacao,omitempty"`
	MovimentacaoID        string     `json:"movimentacao_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// SolicitacaoListResponse listagem paginada de solicitações.
type SolicitacaoListResponse struct {
	Total int                   `json:"total"`
	Itens []SolicitacaoResponse `json:"itens"`
}

// DevolucaoRequest body de POST /api/retiradas/:id/devolucao.
type DevolucaoRequest struct {
	Quantidade int    `json:"quantidade"`
	Observacao string `json:"observacao,omitempty"`
}

// RetiradaResponse representação de uma retirada temporária na API.
type RetiradaResponse struct {
	ID                    string     `json:"id"`
	ItemID                string     `json:"item_id"`
	MovimentacaoID        string     `json:"movimentacao_id"`
	UsuarioID             string     `json:"usuario_id"`
	QuantidadeRetirada    int        `json:"quantidade_retirada"`
	QuantidadeDevolvida   int        `json:"quantidade_devolvida"`
	QuantidadePendente    int        `json:"quantidade_pendente"`
	DataRetirada          time.Time  `json:"data_retirada"`
	DataPrevistaDevolucao time.Time  `json:"data_prevista_devolucao"`
	DataDevolucao         *time.Time `json:"data_devolucao,omitempty"`
	Status                string     `json:"status"`
	EstaAtrasada          bool       `json:"esta_atrasada"`
	Observacao            string     `json:"observacao,omitempty"`
}

// RetiradaListResponse listagem paginada de retiradas temporárias.
type RetiradaListResponse struct {
	Total int                `json:"total"`
	Itens []RetiradaResponse `json:"itens"`
}
