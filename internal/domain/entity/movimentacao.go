package entity

import "time"

// Tipos de movimentação de estoque (taxonomia fechada).
const (
	TipoEntrada   = "ENTRADA"
	TipoSaida     = "SAIDA"
	TipoRetirada  = "RETIRADA" // retirada temporária, exige data prevista de devolução
	TipoDevolucao = "DEVOLUCAO"
)

// TipoValido informa se o tipo pertence à taxonomia fechada de movimentações.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSaida, TipoRetirada, TipoDevolucao:
		return true
	}
	return false
}

// Movimentacao representa um lançamento no razão de estoque.
// Depois de criada, tipo e quantidade são entradas imutáveis do razão:
// uma edição é modelada como estornar o efeito antigo e aplicar o novo.
type Movimentacao struct {
	ID                    string
	ItemID                string
	Tipo                  string // ver constantes Tipo*
	Quantidade            int    // sempre > 0; o sinal vem do tipo
	UsuarioID             string
	Data                  time.Time  // atribuída na criação, imutável
	DataDevolucaoPrevista *time.Time // obrigatória quando Tipo = RETIRADA
	Observacao            string
	CreatedAt             time.Time
}
