package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
)

// NewErrorHandler construye el ErrorHandler central de fiber: registra el
// error y responde el envelope JSON. Fuera de producción incluye el detalle
// del error en el mensaje.
func NewErrorHandler(log zerolog.Logger, env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		log.Error().
			Err(err).
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")

		msg := "error interno del servidor"
		if env != "production" {
			msg = err.Error()
		}
		if code < fiber.StatusInternalServerError {
			return c.Status(code).JSON(dto.Fail(msg))
		}
		return c.Status(code).JSON(dto.Error(msg))
	}
}
