package entity

import "time"

// Status de uma retirada temporária.
const (
	RetiradaAtiva     = "A"
	RetiradaDevolvida = "D"
	RetiradaParcial   = "P"
)

// RetiradaTemporaria acompanha uma movimentação RETIRADA até a devolução completa.
// Criada na mesma transação da movimentação de origem.
type RetiradaTemporaria struct {
	ID                    string
	ItemID                string
	MovimentacaoID        string // movimentação RETIRADA de origem
	UsuarioID             string
	QuantidadeRetirada    int
	QuantidadeDevolvida   int
	DataRetirada          time.Time
	DataPrevistaDevolucao time.Time
	DataDevolucao         *time.Time // preenchida quando totalmente devolvida
	Status                string     // A, D, P
	Observacao            string
	SetorDestino          string
}

// QuantidadePendente informa quanto ainda falta devolver.
func (r *RetiradaTemporaria) QuantidadePendente() int {
	return r.QuantidadeRetirada - r.QuantidadeDevolvida
}

// EstaAtrasada informa se a retirada ativa passou da data prevista de devolução.
func (r *RetiradaTemporaria) EstaAtrasada(agora time.Time) bool {
	return r.Status != RetiradaDevolvida && agora.After(r.DataPrevistaDevolucao)
}
