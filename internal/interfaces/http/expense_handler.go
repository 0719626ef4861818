package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/analytics"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
)

// ExpenseHandler registra gastos y expone el resumen del dashboard.
type ExpenseHandler struct {
	uc        *usecase.ExpenseUseCase
	dashboard *analytics.DashboardUseCase
}

func NewExpenseHandler(uc *usecase.ExpenseUseCase, dashboard *analytics.DashboardUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, dashboard: dashboard}
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// DashboardSummary combina ventas totales y gastos del usuario para
// calcular la utilidad del negocio.
func (h *ExpenseHandler) DashboardSummary(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetSummary(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}
