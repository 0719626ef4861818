package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/auth"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
)

// AuthHandler maneja registro, login y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup registra un usuario nuevo y devuelve el token de sesión.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Signup(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

// Signin autentica con email y contraseña.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	resp, err := h.uc.Signin(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(resp))
}

// Logout no invalida nada del lado del servidor: los tokens son stateless
// y el cliente descarta el suyo. Solo confirma la operación.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.Success(fiber.Map{"message": "sesión cerrada"}))
}

// ForgotPassword dispara el correo de recuperación. Responde 200 exista o
// no la cuenta para no filtrar qué emails están registrados.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.RequestPasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{
		"message": "si el email existe, se envió un enlace de recuperación",
	}))
}

// ResetPassword cambia la contraseña usando el token enviado por correo.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ResetPassword(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"message": "contraseña actualizada"}))
}
