package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/negocio-api/pkg/jwt"
)

// Claves en fiber Locals con la identidad resuelta del token.
const (
	LocalUserID       = "user_id"
	LocalUserName     = "user_name"
	LocalBusinessName = "business_name"
	LocalRole         = "role"
)

// UserResolver resuelve el subject del token contra la colección de usuarios.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer token y carga la identidad en Locals.
// El token puede ser válido y aun así ser rechazado si el usuario fue
// eliminado después de emitirlo.
func AuthMiddleware(secret string, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Server configuration error"))
		}

		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Not authorized, no token provided"))
		}

		claims, err := pkgjwt.Parse(secret, token)
		if err != nil {
			msg := "Not authorized, invalid token"
			if errors.Is(err, pkgjwt.ErrTokenExpired) {
				msg = "Not authorized, token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(msg))
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Not authorized, user no longer exists"))
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserName, user.Name)
		c.Locals(LocalBusinessName, user.BusinessName)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el ID del usuario autenticado, vacío si no hay sesión.
func GetUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
