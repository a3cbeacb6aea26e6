package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/usecase"
)

// ItemHandler requisições HTTP de itens (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create cria um item (POST /api/itens, gestor).
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Codigo == "" || in.Descricao == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo e descricao são requeridos"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtém um item (GET /api/itens/:id).
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List lista itens (GET /api/itens?busca=&ativos=&limit=&offset=).
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()
	out, err := h.uc.Listar(c.Query("busca"), c.QueryBool("ativos", true), page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Update edita dados cadastrais (PUT /api/itens/:id, gestor). A quantidade
// em estoque não é editável por aqui.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Delete desativa o item (DELETE /api/itens/:id, gestor). Soft delete: o
// histórico de movimentações permanece.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
