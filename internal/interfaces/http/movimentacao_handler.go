package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/dto"
	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/domain"
	"github.com/rlourenzo/almoxarifado-api/internal/infrastructure/metrics"
)

// MovimentacaoHandler requisições HTTP do razão de movimentações (protegido).
type MovimentacaoHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *estoque.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Register registra uma movimentação (POST /api/movimentacoes, gestor).
func (h *MovimentacaoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEstoqueInsuficiente) {
			metrics.EstoqueInsuficiente.Inc()
		}
		return respostaErro(c, err)
	}
	metrics.MovimentacoesRegistradas.WithLabelValues(out.Tipo).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita uma movimentação ENTRADA/SAIDA (PUT /api/movimentacoes/:id, gestor).
func (h *MovimentacaoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEstoqueInsuficiente) {
			metrics.EstoqueInsuficiente.Inc()
		}
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma movimentação estornando seu efeito (DELETE /api/movimentacoes/:id, gestor).
func (h *MovimentacaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrEstoqueInsuficiente) {
			metrics.EstoqueInsuficiente.Inc()
		}
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List lista movimentações (GET /api/movimentacoes?item_id=&de=&ate=&limit=&offset=).
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	from, err := parseDataQuery(c.Query("de"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'de' inválida (AAAA-MM-DD)"})
	}
	to, err := parseDataQuery(c.Query("ate"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'ate' inválida (AAAA-MM-DD)"})
	}

	out, err := h.uc.Listar(c.Query("item_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Recalcular refaz a quantidade do item pelo replay do razão
// (POST /api/itens/:id/recalcular, gestor).
func (h *MovimentacaoHandler) Recalcular(c *fiber.Ctx) error {
	qtd, err := h.uc.Recalcular(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"quantidade_atual": qtd})
}

// parseDataQuery interpreta uma data AAAA-MM-DD de query string; fimDoDia
// estende o corte até o último instante do dia.
func parseDataQuery(s string, fimDia bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	if fimDia {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
