package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
)

// EstoqueHandler feeds de status e alerta de estoque (protegido, somente leitura).
type EstoqueHandler struct {
	uc *estoque.StatusUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.StatusUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Alertas devolve os itens que requerem ação com resumo agregado
// (GET /api/estoque/alertas).
func (h *EstoqueHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Criticos devolve apenas os itens críticos (GET /api/estoque/criticos).
func (h *EstoqueHandler) Criticos(c *fiber.Ctx) error {
	out, err := h.uc.Criticos()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Reposicao devolve os itens a repor, ordenados por urgência
// (GET /api/estoque/reposicao).
func (h *EstoqueHandler) Reposicao(c *fiber.Ctx) error {
	out, err := h.uc.Reposicao()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// StatusItem devolve o status de um item (GET /api/itens/:id/status).
func (h *EstoqueHandler) StatusItem(c *fiber.Ctx) error {
	out, err := h.uc.StatusItem(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
