package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

func dia(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func montarRelatorioUC(itemRepo *fakeItemRepo, movRepo *fakeMovRepo) *estoque.RelatorioUseCase {
	return estoque.NewRelatorioUseCase(&fakeValoracaoRepo{movRepo: movRepo, itemRepo: itemRepo}, itemRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// TestInventarioPeriodico_Identidade reproduz o cenário de referência do
// relatório: item a R$ 0,10 a unidade, entrada antes do período, compra e
// consumo dentro dele. As quatro grandezas têm de satisfazer, em decimal
// exato:
//
//	estoque_disponivel = estoque_inicial + compras_liquidas
//	custo_uso          = estoque_disponivel - estoque_final
// ──────────────────────────────────────────────────────────────────────────────

func TestInventarioPeriodico_Identidade(t *testing.T) {
	item := novoItemTeste("i1", 0)
	itemRepo := newFakeItemRepo(item)
	movRepo := &fakeMovRepo{}

	seed := []struct {
		data string
		tipo string
		qtd  int
	}{
		{"2026-05-20", entity.TipoEntrada, 1000}, // antes do período
		{"2026-06-05", entity.TipoEntrada, 500},  // compra do período
		{"2026-06-10", entity.TipoSaida, 300},
		{"2026-06-20", entity.TipoSaida, 100},
	}
	atual := 0
	for i, s := range seed {
		require.NoError(t, movRepo.Create(&entity.Movimentacao{
			ID: string(rune('a' + i)), ItemID: "i1", Tipo: s.tipo, Quantidade: s.qtd,
			Data: dia(s.data).Add(10 * time.Hour),
		}))
		if s.tipo == entity.TipoEntrada {
			atual += s.qtd
		} else {
			atual -= s.qtd
		}
	}
	item.QuantidadeAtual = atual

	uc := montarRelatorioUC(itemRepo, movRepo)
	out, err := uc.InventarioPeriodico(context.Background(), "2026-06-01", "2026-06-30", "")
	require.NoError(t, err)

	// 1000 × 0,10 antes do período
	assert.True(t, out.EstoqueInicial.Equal(decimal.RequireFromString("100")), "estoque_inicial = %s", out.EstoqueInicial)
	// 500 × 0,10 comprados dentro
	assert.True(t, out.ComprasLiquidas.Equal(decimal.RequireFromString("50")), "compras_liquidas = %s", out.ComprasLiquidas)
	// (1000 + 500 - 400) × 0,10
	assert.True(t, out.EstoqueFinal.Equal(decimal.RequireFromString("110")), "estoque_final = %s", out.EstoqueFinal)

	assert.True(t, out.EstoqueDisponivel.Equal(out.EstoqueInicial.Add(out.ComprasLiquidas)))
	assert.True(t, out.CustoUso.Equal(out.EstoqueDisponivel.Sub(out.EstoqueFinal)))
	// 400 consumidos × 0,10
	assert.True(t, out.CustoUso.Equal(decimal.RequireFromString("40")), "custo_uso = %s", out.CustoUso)

	require.Len(t, out.Itens, 1)
	assert.Equal(t, item.Codigo, out.Itens[0].Codigo)
	assert.True(t, out.Itens[0].ValorTotal.Equal(decimal.RequireFromString("110")))
}

// Devoluções dentro do período sem compras: o estoque cresce sem compra e o
// custo de uso resulta negativo. É um valor legítimo, não um erro.
func TestInventarioPeriodico_CustoUsoNegativo(t *testing.T) {
	item := novoItemTeste("i1", 0)
	itemRepo := newFakeItemRepo(item)
	movRepo := &fakeMovRepo{}

	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "a", ItemID: "i1", Tipo: entity.TipoEntrada, Quantidade: 1000,
		Data: dia("2026-05-01"),
	}))
	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "b", ItemID: "i1", Tipo: entity.TipoRetirada, Quantidade: 200,
		Data: dia("2026-05-10"),
	}))
	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "c", ItemID: "i1", Tipo: entity.TipoDevolucao, Quantidade: 200,
		Data: dia("2026-06-10"),
	}))

	uc := montarRelatorioUC(itemRepo, movRepo)
	out, err := uc.InventarioPeriodico(context.Background(), "2026-06-01", "2026-06-30", "")
	require.NoError(t, err)

	assert.True(t, out.ComprasLiquidas.IsZero())
	assert.True(t, out.CustoUso.IsNegative(), "devolução sem compra gera custo_uso negativo, custo_uso = %s", out.CustoUso)
	assert.True(t, out.CustoUso.Equal(decimal.RequireFromString("-20")))
}

// O corte de fim de período é inclusivo até o último instante do dia: uma
// movimentação às 23:59 do dia final ainda pertence ao período.
func TestInventarioPeriodico_CorteFimDeDia(t *testing.T) {
	item := novoItemTeste("i1", 0)
	itemRepo := newFakeItemRepo(item)
	movRepo := &fakeMovRepo{}

	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "a", ItemID: "i1", Tipo: entity.TipoEntrada, Quantidade: 100,
		Data: dia("2026-06-30").Add(23*time.Hour + 59*time.Minute),
	}))

	uc := montarRelatorioUC(itemRepo, movRepo)
	out, err := uc.InventarioPeriodico(context.Background(), "2026-06-01", "2026-06-30", "")
	require.NoError(t, err)

	assert.True(t, out.ComprasLiquidas.Equal(decimal.RequireFromString("10")))
	assert.True(t, out.EstoqueFinal.Equal(decimal.RequireFromString("10")))
}

func TestInventarioPeriodico_FiltroPorCategoria(t *testing.T) {
	papel := novoItemTeste("i1", 0)
	papel.Categoria = "escritorio"
	luva := novoItemTeste("i2", 0)
	luva.Codigo = "ALM-i2"
	luva.Categoria = "epi"
	itemRepo := newFakeItemRepo(papel, luva)
	movRepo := &fakeMovRepo{}

	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "a", ItemID: "i1", Tipo: entity.TipoEntrada, Quantidade: 100, Data: dia("2026-06-05"),
	}))
	require.NoError(t, movRepo.Create(&entity.Movimentacao{
		ID: "b", ItemID: "i2", Tipo: entity.TipoEntrada, Quantidade: 500, Data: dia("2026-06-05"),
	}))

	uc := montarRelatorioUC(itemRepo, movRepo)
	out, err := uc.InventarioPeriodico(context.Background(), "2026-06-01", "2026-06-30", "escritorio")
	require.NoError(t, err)

	assert.True(t, out.ComprasLiquidas.Equal(decimal.RequireFromString("10")), "só a compra da categoria filtrada conta")
	require.Len(t, out.Itens, 1)
	assert.Equal(t, "escritorio", out.Itens[0].Categoria)
}

func TestInventarioPeriodico_PeriodoInvalido(t *testing.T) {
	uc := montarRelatorioUC(newFakeItemRepo(), &fakeMovRepo{})

	casos := []struct{ inicio, fim string }{
		{"2026-13-01", "2026-06-30"},
		{"2026-06-01", "30/06/2026"},
		{"", "2026-06-30"},
		{"2026-06-30", "2026-06-01"}, // invertido
	}
	for _, c := range casos {
		_, err := uc.InventarioPeriodico(context.Background(), c.inicio, c.fim, "")
		assert.ErrorIs(t, err, domain.ErrPeriodoInvalido, "inicio=%q fim=%q", c.inicio, c.fim)
	}
}

func TestCategorias(t *testing.T) {
	papel := novoItemTeste("i1", 0)
	papel.Categoria = "escritorio"
	luva := novoItemTeste("i2", 0)
	luva.Categoria = "epi"
	uc := montarRelatorioUC(newFakeItemRepo(papel, luva), &fakeMovRepo{})

	cats, err := uc.Categorias(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"epi", "escritorio"}, cats)
}
