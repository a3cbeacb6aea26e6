package estoque_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValorMovimento_Sinais(t *testing.T) {
	vu := dec("10.50")

	assert.True(t, dec("105.00").Equal(estoque.ValorMovimento(entity.TipoEntrada, 10, vu)))
	assert.True(t, dec("105.00").Equal(estoque.ValorMovimento(entity.TipoDevolucao, 10, vu)))
	assert.True(t, dec("-105.00").Equal(estoque.ValorMovimento(entity.TipoSaida, 10, vu)))
	assert.True(t, dec("-105.00").Equal(estoque.ValorMovimento(entity.TipoRetirada, 10, vu)))
}

func TestValorMovimento_TipoDesconhecidoContribuiZero(t *testing.T) {
	// Padrão defensivo na valoração: tipo não reconhecido não soma nem falha.
	v := estoque.ValorMovimento("AJUSTE", 99, dec("7.77"))
	assert.True(t, v.IsZero())
}

func TestValorEstoque_FoldAssinado(t *testing.T) {
	movs := []estoque.MovimentoValorado{
		{Tipo: entity.TipoEntrada, Quantidade: 100, ValorUnitario: dec("2.00")},  // +200.00
		{Tipo: entity.TipoSaida, Quantidade: 30, ValorUnitario: dec("2.00")},     // -60.00
		{Tipo: entity.TipoRetirada, Quantidade: 10, ValorUnitario: dec("1.25")},  // -12.50
		{Tipo: entity.TipoDevolucao, Quantidade: 4, ValorUnitario: dec("1.25")},  // +5.00
	}
	assert.True(t, dec("132.50").Equal(estoque.ValorEstoque(movs)))
}

// Identidade do relatório periódico: abertura + compras - fechamento == custo
// de uso, exata em decimal, sem acúmulo de arredondamento.
func TestValorEstoque_IdentidadeDoPeriodo(t *testing.T) {
	vu := dec("0.10") // valor que não tem representação binária exata

	anteriores := []estoque.MovimentoValorado{
		{Tipo: entity.TipoEntrada, Quantidade: 1000, ValorUnitario: vu},
		{Tipo: entity.TipoSaida, Quantidade: 333, ValorUnitario: vu},
	}
	doPeriodo := []estoque.MovimentoValorado{
		{Tipo: entity.TipoEntrada, Quantidade: 500, ValorUnitario: vu},
		{Tipo: entity.TipoSaida, Quantidade: 777, ValorUnitario: vu},
		{Tipo: entity.TipoDevolucao, Quantidade: 21, ValorUnitario: vu},
	}

	abertura := estoque.ValorEstoque(anteriores)
	fechamento := estoque.ValorEstoque(append(append([]estoque.MovimentoValorado{}, anteriores...), doPeriodo...))

	compras := decimal.Zero
	for _, m := range doPeriodo {
		if m.Tipo == entity.TipoEntrada {
			compras = compras.Add(decimal.NewFromInt(int64(m.Quantidade)).Mul(m.ValorUnitario))
		}
	}

	disponivel := abertura.Add(compras)
	custoUso := disponivel.Sub(fechamento)

	// Conferência manual: custo de uso = saídas - devoluções do período.
	assert.True(t, dec("75.60").Equal(custoUso), "custo de uso: %s", custoUso)
	assert.True(t, abertura.Add(compras).Sub(fechamento).Equal(custoUso))
}

// O período pode fechar com crescimento líquido além das compras (devoluções):
// custo de uso negativo é esperado, não é erro.
func TestValorEstoque_CustoDeUsoNegativo(t *testing.T) {
	vu := dec("5.00")
	doPeriodo := []estoque.MovimentoValorado{
		{Tipo: entity.TipoDevolucao, Quantidade: 10, ValorUnitario: vu}, // +50.00 sem compra
	}
	abertura := decimal.Zero
	fechamento := estoque.ValorEstoque(doPeriodo)
	custoUso := abertura.Sub(fechamento)
	assert.True(t, custoUso.IsNegative())
}
