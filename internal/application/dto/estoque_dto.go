package dto

import "github.com/shopspring/decimal"

// StatusRecord é o status de estoque de um item como exposto pela API.
// As chaves JSON são contrato estável com os consumidores (UI, exportadores).
type StatusRecord struct {
	Status          string  `json:"status"`
	ItemID          string  `json:"item_id"`
	ItemCodigo      string  `json:"item_codigo"`
	ItemDescricao   string  `json:"item_descricao"`
	QuantidadeAtual int     `json:"quantidade_atual"`
	EstoqueMinimo   int     `json:"estoque_minimo"`
	EstoqueMaximo   int     `json:"estoque_maximo"`
	Percentual      float64 `json:"percentual"`
	RequerAcao      bool    `json:"requer_acao"`
	Mensagem        string  `json:"mensagem"`
	// Presentes apenas no feed de reposição.
	NivelUrgencia               *int `json:"nivel_urgencia,omitempty"`
	QuantidadeReposicaoSugerida *int `json:"quantidade_reposicao_sugerida,omitempty"`
}

// ResumoAlertas agregados do feed de alertas.
type ResumoAlertas struct {
	TotalAlertas int `json:"total_alertas"`
	Criticos     int `json:"criticos"`
	Baixos       int `json:"baixos"`
	Altos        int `json:"altos"`
}

// AlertasResponse corpo de GET /api/estoque/alertas.
type AlertasResponse struct {
	Resumo  ResumoAlertas  `json:"resumo"`
	Alertas []StatusRecord `json:"alertas"`
}

// CriticosResponse corpo de GET /api/estoque/criticos.
type CriticosResponse struct {
	Total         int            `json:"total"`
	ItensCriticos []StatusRecord `json:"itens_criticos"`
}

// ReposicaoResponse corpo de GET /api/estoque/reposicao, ordenado por
// nivel_urgencia decrescente.
type ReposicaoResponse struct {
	Total int            `json:"total"`
	Itens []StatusRecord `json:"itens"`
}

// RelatorioItemRow linha de detalhamento por item do relatório periódico.
type RelatorioItemRow struct {
	Codigo          string          `json:"codigo"`
	Descricao       string          `json:"descricao"`
	Categoria       string          `json:"categoria,omitempty"`
	QuantidadeAtual int             `json:"quantidade_atual"`
	ValorUnitario   decimal.Decimal `json:"valor_unitario"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
}

// RelatorioPeriodicoResponse corpo do relatório de inventário periódico.
// Identidade: estoque_disponivel = estoque_inicial + compras_liquidas e
// custo_uso = estoque_disponivel - estoque_final, exatas em decimal.
type RelatorioPeriodicoResponse struct {
	DataInicio        string          `json:"data_inicio"`
	DataFim           string          `json:"data_fim"`
	Categoria         string          `json:"categoria,omitempty"`
	EstoqueInicial    decimal.Decimal `json:"estoque_inicial"`
	ComprasLiquidas   decimal.Decimal `json:"compras_liquidas"`
	EstoqueDisponivel decimal.Decimal `json:"estoque_disponivel"`
	EstoqueFinal      decimal.Decimal `json:"estoque_final"`
	CustoUso          decimal.Decimal `json:"custo_uso"`
	Itens             []RelatorioItemRow `json:"itens"`
}
