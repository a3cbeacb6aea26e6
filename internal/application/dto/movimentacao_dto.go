package dto

import "time"

// RegistrarMovimentacaoRequest body de POST /api/movimentacoes.
// data_devolucao_prevista (AAAA-MM-DD) é obrigatória quando tipo = RETIRADA.
type RegistrarMovimentacaoRequest struct {
	ItemID                string `json:"item_id"`
	Tipo                  string `json:"tipo"`
	Quantidade            int    `json:"quantidade"`
	DataDevolucaoPrevista string `json:"data_devolucao_prevista,omitempty"`
	Observacao            string `json:"observacao,omitempty"`
}

// AtualizarMovimentacaoRequest body de PUT /api/movimentacoes/:id.
// A edição estorna o efeito antigo e aplica o novo na mesma transação.
type AtualizarMovimentacaoRequest struct {
	Tipo                  string `json:"tipo"`
	Quantidade            int    `json:"quantidade"`
	DataDevolucaoPrevista string `json:"data_devolucao_prevista,omitempty"`
	Observacao            string `json:"observacao,omitempty"`
}

// MovimentacaoResponse representação de uma movimentação na API.
type MovimentacaoResponse struct {
	ID                    string     `json:"id"`
	ItemID                string     `json:"item_id"`
	Tipo                  string     `json:"tipo"`
	Quantidade            int        `json:"quantidade"`
	UsuarioID             string     `json:"usuario_id"`
	Data                  time.Time  `json:"data"`
	DataDevolucaoPrevista *time.Time `json:"data_devolucao_prevista,omitempty"`
	Observacao            string     `json:"observacao,omitempty"`
}

// MovimentacaoListResponse listagem paginada de movimentações.
type MovimentacaoListResponse struct {
	Total int                    `json:"total"`
	Itens []MovimentacaoResponse `json:"itens"`
}
