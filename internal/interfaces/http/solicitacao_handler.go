package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
)

// SolicitacaoHandler fluxo de solicitações de material.
// Criação e consulta são do solicitante autenticado; aprovação, recusa e
// atendimento passam por RequireRole(gestor) no router.
type SolicitacaoHandler struct {
	uc *estoque.SolicitacaoUseCase
}

// NewSolicitacaoHandler constrói o handler.
func NewSolicitacaoHandler(uc *estoque.SolicitacaoUseCase) *SolicitacaoHandler {
	return &SolicitacaoHandler{uc: uc}
}

// Create abre uma solicitação (POST /api/solicitacoes).
func (h *SolicitacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarSolicitacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.Criar(c.Context(), GetUserID(c), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve aprova uma solicitação pendente (POST /api/solicitacoes/:id/aprovar).
func (h *SolicitacaoHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Aprovar(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Reject recusa uma solicitação pendente (POST /api/solicitacoes/:id/recusar).
func (h *SolicitacaoHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Recusar(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Fulfill atende uma solicitação aprovada, gerando a movimentação
// correspondente (POST /api/solicitacoes/:id/atender).
func (h *SolicitacaoHandler) Fulfill(c *fiber.Ctx) error {
	out, err := h.uc.Atender(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// GetByID busca uma solicitação (GET /api/solicitacoes/:id).
// Solicitantes só enxergam as próprias.
func (h *SolicitacaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List lista solicitações (GET /api/solicitacoes?status=&limit=&offset=).
// Gestores enxergam todas; solicitantes só as próprias.
func (h *SolicitacaoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()

	out, err := h.uc.Listar(GetUserID(c), GetRole(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
