package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores do razão de estoque, expostos em /metrics.
var (
	MovimentacoesRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almoxarifado",
		Name:      "movimentacoes_registradas_total",
		Help:      "Movimentações aceitas no razão, por tipo.",
	}, []string{"tipo"})

	EstoqueInsuficiente = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "almoxarifado",
		Name:      "movimentacoes_rejeitadas_estoque_insuficiente_total",
		Help:      "Movimentações rejeitadas por saldo insuficiente.",
	})

	RelatoriosGerados = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almoxarifado",
		Name:      "relatorios_gerados_total",
		Help:      "Relatórios de inventário periódico gerados, por formato.",
	}, []string{"formato"})
)
