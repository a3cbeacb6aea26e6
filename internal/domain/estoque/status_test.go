package estoque_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
)

func TestClassificar_FaixasDeStatus(t *testing.T) {
	lim := estoque.LimitesPadrao()

	tests := []struct {
		nome     string
		atual    int
		status   string
		urgencia int
	}{
		{"abaixo de 50% do mínimo é crítico", 100, estoque.StatusCritico, 3},
		{"abaixo do mínimo é baixo", 250, estoque.StatusBaixo, 2},
		{"entre mínimo e máximo é ok", 500, estoque.StatusOK, 0},
		{"acima do máximo é alto", 1500, estoque.StatusAlto, 1},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			s := estoque.Classificar(lim, tt.atual, 300, 1000)
			assert.Equal(t, tt.status, s.Status)
			assert.Equal(t, tt.urgencia, s.NivelUrgencia)
			assert.Equal(t, tt.status != estoque.StatusOK, s.RequerAcao)
		})
	}
}

func TestClassificar_OrdemDePrioridade(t *testing.T) {
	// CRITICO/BAIXO avaliados antes de ALTO: item zerado com máximo
	// patologicamente pequeno é CRITICO, nunca ALTO.
	s := estoque.Classificar(estoque.Limites{MinimoPadrao: 300, MaximoPadrao: 1000, FracaoCritica: 0.5}, 0, 300, 1)
	assert.Equal(t, estoque.StatusCritico, s.Status)
}

func TestClassificar_LimitesPadraoQuandoNaoInformados(t *testing.T) {
	lim := estoque.LimitesPadrao()

	s := estoque.Classificar(lim, 500, 0, 0)
	assert.Equal(t, 300, s.EstoqueMinimo)
	assert.Equal(t, 1000, s.EstoqueMaximo)
	assert.Equal(t, estoque.StatusOK, s.Status)

	s = estoque.Classificar(lim, 100, -1, -1)
	assert.Equal(t, estoque.StatusCritico, s.Status)
}

func TestClassificar_QuantidadeReposicao(t *testing.T) {
	lim := estoque.LimitesPadrao()

	assert.Equal(t, 900, estoque.Classificar(lim, 100, 300, 1000).QuantidadeReposicao)
	assert.Equal(t, 750, estoque.Classificar(lim, 250, 300, 1000).QuantidadeReposicao)
	assert.Equal(t, 0, estoque.Classificar(lim, 500, 300, 1000).QuantidadeReposicao, "OK não sugere reposição")
	assert.Equal(t, 0, estoque.Classificar(lim, 1500, 300, 1000).QuantidadeReposicao, "ALTO não sugere reposição")
}

func TestClassificar_Percentual(t *testing.T) {
	lim := estoque.LimitesPadrao()

	assert.InDelta(t, 33.33, estoque.Classificar(lim, 100, 300, 1000).Percentual, 0.01)
	assert.InDelta(t, 83.33, estoque.Classificar(lim, 250, 300, 1000).Percentual, 0.01)
	assert.InDelta(t, 166.67, estoque.Classificar(lim, 500, 300, 1000).Percentual, 0.01)
}

func TestClassificar_MinimoZeroSemDivisao(t *testing.T) {
	// Fração crítica zero junto com mínimo padrão zero: percentual cai para 0.0
	// sem pânico de divisão por zero.
	s := estoque.Classificar(estoque.Limites{MinimoPadrao: 0, MaximoPadrao: 1000, FracaoCritica: 0.5}, 10, 0, 1000)
	assert.Equal(t, 0.0, s.Percentual)
}

func TestClassificar_Idempotente(t *testing.T) {
	lim := estoque.LimitesPadrao()
	a := estoque.Classificar(lim, 123, 300, 1000)
	b := estoque.Classificar(lim, 123, 300, 1000)
	assert.Equal(t, a, b)
}

func TestNivelUrgencia_ChaveDeOrdenacao(t *testing.T) {
	lim := estoque.LimitesPadrao()
	statuses := []estoque.Status{
		estoque.Classificar(lim, 500, 300, 1000),  // OK
		estoque.Classificar(lim, 1500, 300, 1000), // ALTO
		estoque.Classificar(lim, 100, 300, 1000),  // CRITICO
		estoque.Classificar(lim, 250, 300, 1000),  // BAIXO
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].NivelUrgencia > statuses[j].NivelUrgencia
	})

	ordem := []string{}
	for _, s := range statuses {
		ordem = append(ordem, s.Status)
	}
	assert.Equal(t, []string{estoque.StatusCritico, estoque.StatusBaixo, estoque.StatusAlto, estoque.StatusOK}, ordem)
}
