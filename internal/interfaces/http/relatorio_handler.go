package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/infrastructure/excel"
	"github.com/rlourenzo/almoxarifado-api/internal/infrastructure/metrics"
)

// RelatorioHandler relatório de inventário periódico (protegido, gestor).
type RelatorioHandler struct {
	uc *estoque.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *estoque.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Inventario gera o relatório do período
// (GET /api/relatorios/inventario-periodico?data_inicio=&data_fim=&categoria=).
// export=excel devolve o XLSX; o padrão é JSON.
func (h *RelatorioHandler) Inventario(c *fiber.Ctx) error {
	dataInicio := c.Query("data_inicio")
	dataFim := c.Query("data_fim")
	if dataInicio == "" || dataFim == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_inicio e data_fim são requeridos (AAAA-MM-DD)"})
	}

	out, err := h.uc.InventarioPeriodico(c.Context(), dataInicio, dataFim, c.Query("categoria"))
	if err != nil {
		return respostaErro(c, err)
	}

	if c.Query("export") == "excel" {
		xlsx, err := excel.ExportarRelatorioPeriodico(out)
		if err != nil {
			return respostaErro(c, err)
		}
		metrics.RelatoriosGerados.WithLabelValues("excel").Inc()
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario_`+dataInicio+`_`+dataFim+`.xlsx"`)
		return c.Send(xlsx)
	}

	metrics.RelatoriosGerados.WithLabelValues("json").Inc()
	return c.JSON(out)
}

// Categorias lista as categorias para o filtro do relatório
// (GET /api/relatorios/categorias).
func (h *RelatorioHandler) Categorias(c *fiber.Ctx) error {
	cats, err := h.uc.Categorias(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"categorias": cats})
}
