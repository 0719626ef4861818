package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para mensajes de contacto.
type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
