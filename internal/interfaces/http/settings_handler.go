package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
)

// SettingsHandler expone las preferencias del negocio autenticado.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devuelve la configuración del usuario; 404 si todavía no guardó ninguna.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Upsert crea o reemplaza la configuración del usuario en una sola operación.
func (h *SettingsHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Upsert(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}
