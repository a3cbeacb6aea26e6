package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
)

// RetiradaHandler consulta e devolução de retiradas temporárias.
type RetiradaHandler struct {
	uc *estoque.RetiradaUseCase
}

// NewRetiradaHandler constrói o handler.
func NewRetiradaHandler(uc *estoque.RetiradaUseCase) *RetiradaHandler {
	return &RetiradaHandler{uc: uc}
}

// List lista retiradas
// (GET /api/retiradas?status=&atrasadas=&limit=&offset=).
func (h *RetiradaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()

	out, err := h.uc.Listar(c.Query("status"), c.QueryBool("atrasadas", false), page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// GetByID busca uma retirada (GET /api/retiradas/:id).
func (h *RetiradaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Devolucao registra devolução total ou parcial
// (POST /api/retiradas/:id/devolucao).
func (h *RetiradaHandler) Devolucao(c *fiber.Ctx) error {
	var in dto.DevolucaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.Devolver(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
