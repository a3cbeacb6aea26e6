package estoque

import (
	"context"
	"time"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/repository"
)

// RelatorioUseCase monta o relatório de inventário periódico a partir do
// motor de valoração histórica. Independente do cache quantidade_atual:
// abertura e fechamento são replays completos do razão, o que permite
// comparar dois cortes e derivar o consumo líquido do período.
type RelatorioUseCase struct {
	valoracaoRepo repository.ValoracaoRepository
	itemRepo      repository.ItemRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(valoracaoRepo repository.ValoracaoRepository, itemRepo repository.ItemRepository) *RelatorioUseCase {
	return &RelatorioUseCase{valoracaoRepo: valoracaoRepo, itemRepo: itemRepo}
}

// fimDoDia devolve o último instante do dia da data dada.
func fimDoDia(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}

// InventarioPeriodico computa as quatro grandezas do período:
//
//	estoque_inicial    = valoração na véspera do início
//	compras_liquidas   = Σ ENTRADA dentro de [início, fim]
//	estoque_disponivel = inicial + compras
//	custo_uso          = disponível - estoque_final
//
// custo_uso negativo é esperado quando o período teve crescimento líquido
// além das compras (devoluções), não é erro. Datas em AAAA-MM-DD.
func (uc *RelatorioUseCase) InventarioPeriodico(ctx context.Context, dataInicio, dataFim, categoria string) (*dto.RelatorioPeriodicoResponse, error) {
	inicio, err := time.ParseInLocation("2006-01-02", dataInicio, time.Local)
	if err != nil {
		return nil, domain.ErrPeriodoInvalido
	}
	fim, err := time.ParseInLocation("2006-01-02", dataFim, time.Local)
	if err != nil {
		return nil, domain.ErrPeriodoInvalido
	}
	if fim.Before(inicio) {
		return nil, domain.ErrPeriodoInvalido
	}

	vesperaInicio := fimDoDia(inicio.AddDate(0, 0, -1))
	estoqueInicial, err := uc.valoracaoRepo.ValorEstoqueEm(ctx, vesperaInicio, categoria)
	if err != nil {
		return nil, err
	}
	compras, err := uc.valoracaoRepo.ComprasNoPeriodo(ctx, inicio, fimDoDia(fim), categoria)
	if err != nil {
		return nil, err
	}
	estoqueFinal, err := uc.valoracaoRepo.ValorEstoqueEm(ctx, fimDoDia(fim), categoria)
	if err != nil {
		return nil, err
	}

	disponivel := estoqueInicial.Add(compras)
	custoUso := disponivel.Sub(estoqueFinal)

	out := &dto.RelatorioPeriodicoResponse{
		DataInicio:        dataInicio,
		DataFim:           dataFim,
		Categoria:         categoria,
		EstoqueInicial:    estoqueInicial,
		ComprasLiquidas:   compras,
		EstoqueDisponivel: disponivel,
		EstoqueFinal:      estoqueFinal,
		CustoUso:          custoUso,
		Itens:             []dto.RelatorioItemRow{},
	}

	itens, err := uc.itemRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	for _, item := range itens {
		if categoria != "" && item.Categoria != categoria {
			continue
		}
		out.Itens = append(out.Itens, dto.RelatorioItemRow{
			Codigo:          item.Codigo,
			Descricao:       item.Descricao,
			Categoria:       item.Categoria,
			QuantidadeAtual: item.QuantidadeAtual,
			ValorUnitario:   item.ValorUnitario,
			ValorTotal:      item.ValorTotalEstoque(),
		})
	}
	return out, nil
}

// Categorias lista as categorias distintas dos itens, para o filtro do relatório.
func (uc *RelatorioUseCase) Categorias(ctx context.Context) ([]string, error) {
	return uc.valoracaoRepo.Categorias(ctx)
}
