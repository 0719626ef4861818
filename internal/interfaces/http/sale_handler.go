package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/sales"
)

// SaleHandler expone el CRUD de ventas y los reportes agregados.
type SaleHandler struct {
	uc      *sales.SaleUseCase
	reports *sales.ReportsUseCase
}

func NewSaleHandler(uc *sales.SaleUseCase, reports *sales.ReportsUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, reports: reports}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Complete marca la venta como completada. Repetir la operación sobre una
// venta ya completada devuelve 200 sin modificar nada.
func (h *SaleHandler) Complete(c *fiber.Ctx) error {
	resp, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"message": "venta eliminada"}))
}

// Summary devuelve totales globales, completados y pendientes.
func (h *SaleHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.reports.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Analytics agrega ventas por mes calendario (todos los años juntos) o por
// año histórico, según ?view=monthly|yearly.
func (h *SaleHandler) Analytics(c *fiber.Ctx) error {
	resp, err := h.reports.Analytics(c.Context(), c.Query("view", "monthly"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// TopCustomers devuelve los cinco clientes con mayor monto acumulado.
func (h *SaleHandler) TopCustomers(c *fiber.Ctx) error {
	resp, err := h.reports.TopCustomers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// TopProducts devuelve los cinco productos con mayor monto acumulado.
func (h *SaleHandler) TopProducts(c *fiber.Ctx) error {
	resp, err := h.reports.TopProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// PendingOrders lista las ventas aún no completadas.
func (h *SaleHandler) PendingOrders(c *fiber.Ctx) error {
	resp, err := h.reports.PendingOrders(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}
