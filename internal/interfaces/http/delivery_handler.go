package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
)

// DeliveryHandler expone el CRUD de entregas del negocio autenticado.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"message": "entrega eliminada"}))
}
