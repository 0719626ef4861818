package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/analytics"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
)

// ProductHandler expone el CRUD de inventario y sus reportes derivados.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	reports *analytics.InventoryReportsUseCase
}

func NewProductHandler(uc *usecase.ProductUseCase, reports *analytics.InventoryReportsUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"message": "producto eliminado"}))
}

// LowStock lista productos con existencias por debajo del punto de reorden.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	resp, err := h.reports.LowStock(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// OutOfStock lista productos sin existencias.
func (h *ProductHandler) OutOfStock(c *fiber.Ctx) error {
	resp, err := h.reports.OutOfStock(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Expired lista productos cuya fecha de vencimiento ya pasó.
func (h *ProductHandler) Expired(c *fiber.Ctx) error {
	resp, err := h.reports.Expired(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Notifications agrupa las tres alertas de inventario en una sola respuesta.
func (h *ProductHandler) Notifications(c *fiber.Ctx) error {
	resp, err := h.reports.Notifications(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}
