package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/usecase"
)

// FornecedorHandler CRUD de fornecedores (protegido, gestor).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create cadastra um fornecedor (POST /api/fornecedores).
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um fornecedor (GET /api/fornecedores/:id).
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// List lista fornecedores (GET /api/fornecedores?busca=&limit=&offset=).
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()

	out, err := h.uc.Listar(c.Query("busca"), page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Update atualiza um fornecedor (PUT /api/fornecedores/:id).
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Delete desativa um fornecedor (DELETE /api/fornecedores/:id).
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
