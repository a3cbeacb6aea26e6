package entity

import "time"

// Tipos de solicitação de material.
const (
	SolicitacaoConsumo    = "CONSUMO"    // gera SAIDA ao ser atendida
	SolicitacaoTemporaria = "TEMPORARIA" // gera RETIRADA ao ser atendida
)

// Status do fluxo de solicitação.
const (
	SolicitacaoPendente = "PENDENTE"
	SolicitacaoAprovada = "APROVADA"
	SolicitacaoRecusada = "RECUSADA"
	SolicitacaoAtendida = "ATENDIDA"
)

// Solicitacao representa um pedido de material feito por um solicitante.
// O estoque só é afetado quando a solicitação aprovada é atendida,
// gerando a movimentação correspondente.
type Solicitacao struct {
	ID                    string
	ItemID                string
	SolicitanteID         string
	Quantidade            int
	Tipo                  string     // CONSUMO, TEMPORARIA
	Status                string     // PENDENTE, APROVADA, RECUSADA, ATENDIDA
	DataDevolucaoPrevista *time.Time // obrigatória quando Tipo = TEMPORARIA
	Observacao            string
	MovimentacaoID        string // preenchida ao atender
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
