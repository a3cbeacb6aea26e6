package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
)

var itemHeaders = []string{"Código", "Descrição", "Categoria", "Quantidade", "Valor Unitário", "Valor Total"}

// ExportarRelatorioPeriodico gera o relatório de inventário periódico em XLSX:
// aba Resumo com as quatro grandezas do período e aba Itens com o
// detalhamento por item.
func ExportarRelatorioPeriodico(rel *dto.RelatorioPeriodicoResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	resumo := "Resumo"
	f.SetSheetName("Sheet1", resumo)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	linhas := [][]any{
		{"Período", rel.DataInicio + " a " + rel.DataFim},
		{"Categoria", categoriaLabel(rel.Categoria)},
		{"Estoque inicial", rel.EstoqueInicial.StringFixed(2)},
		{"Compras líquidas", rel.ComprasLiquidas.StringFixed(2)},
		{"Estoque disponível", rel.EstoqueDisponivel.StringFixed(2)},
		{"Estoque final", rel.EstoqueFinal.StringFixed(2)},
		{"Custo de uso", rel.CustoUso.StringFixed(2)},
	}
	for i, linha := range linhas {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(resumo, cell, &linha); err != nil {
			return nil, fmt.Errorf("escrever resumo: %w", err)
		}
		_ = f.SetCellStyle(resumo, cell, cell, boldStyle)
	}
	_ = f.SetColWidth(resumo, "A", "A", 22)
	_ = f.SetColWidth(resumo, "B", "B", 24)

	itens := "Itens"
	if _, err := f.NewSheet(itens); err != nil {
		return nil, fmt.Errorf("criar aba de itens: %w", err)
	}
	for i, h := range itemHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		_ = f.SetCellValue(itens, cell, h)
		_ = f.SetCellStyle(itens, cell, cell, boldStyle)
	}
	for i, row := range rel.Itens {
		linha := []any{
			row.Codigo, row.Descricao, row.Categoria, row.QuantidadeAtual,
			row.ValorUnitario.StringFixed(2), row.ValorTotal.StringFixed(2),
		}
		if err := f.SetSheetRow(itens, fmt.Sprintf("A%d", i+2), &linha); err != nil {
			return nil, fmt.Errorf("escrever item %s: %w", row.Codigo, err)
		}
	}
	_ = f.SetColWidth(itens, "A", "B", 28)
	_ = f.SetColWidth(itens, "C", "F", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func categoriaLabel(c string) string {
	if c == "" {
		return "todas"
	}
	return c
}
