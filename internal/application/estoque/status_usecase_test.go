package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	domestoque "github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
)

// quatro itens, um por status: 100=CRITICO, 250=BAIXO, 500=OK, 1500=ALTO
func montarStatusUC() *estoque.StatusUseCase {
	critico := novoItemTeste("i1", 100)
	baixo := novoItemTeste("i2", 250)
	ok := novoItemTeste("i3", 500)
	alto := novoItemTeste("i4", 1500)
	baixo.Codigo, ok.Codigo, alto.Codigo = "ALM-i2", "ALM-i3", "ALM-i4"
	return estoque.NewStatusUseCase(newFakeItemRepo(critico, baixo, ok, alto), domestoque.LimitesPadrao())
}

func TestAlertas_ResumoEFeed(t *testing.T) {
	uc := montarStatusUC()

	out, err := uc.Alertas()
	require.NoError(t, err)

	assert.Equal(t, 3, out.Resumo.TotalAlertas, "OK fica fora do feed")
	assert.Equal(t, 1, out.Resumo.Criticos)
	assert.Equal(t, 1, out.Resumo.Baixos)
	assert.Equal(t, 1, out.Resumo.Altos)
	require.Len(t, out.Alertas, 3)
	for _, a := range out.Alertas {
		assert.True(t, a.RequerAcao)
		assert.Nil(t, a.NivelUrgencia, "urgência só aparece no feed de reposição")
	}
}

func TestCriticos_SomenteCriticos(t *testing.T) {
	uc := montarStatusUC()

	out, err := uc.Criticos()
	require.NoError(t, err)

	require.Equal(t, 1, out.Total)
	assert.Equal(t, domestoque.StatusCritico, out.ItensCriticos[0].Status)
	assert.Equal(t, "i1", out.ItensCriticos[0].ItemID)
}

func TestReposicao_OrdenadaPorUrgencia(t *testing.T) {
	uc := montarStatusUC()

	out, err := uc.Reposicao()
	require.NoError(t, err)

	require.Equal(t, 2, out.Total, "só CRITICO e BAIXO pedem reposição")
	require.NotNil(t, out.Itens[0].NivelUrgencia)
	assert.Equal(t, 3, *out.Itens[0].NivelUrgencia)
	assert.Equal(t, 900, *out.Itens[0].QuantidadeReposicaoSugerida, "repõe até o máximo: 1000 - 100")
	assert.Equal(t, 2, *out.Itens[1].NivelUrgencia)
	assert.Equal(t, 750, *out.Itens[1].QuantidadeReposicaoSugerida)
}

func TestStatusItem_PercentualDoMinimo(t *testing.T) {
	uc := montarStatusUC()

	rec, err := uc.StatusItem("i2")
	require.NoError(t, err)

	assert.Equal(t, domestoque.StatusBaixo, rec.Status)
	assert.InDelta(t, 83.33, rec.Percentual, 0.001)
}
