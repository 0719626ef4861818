package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery (acotado por dueño).
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Delivery, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Delivery, error)
	Update(ctx context.Context, delivery *entity.Delivery) error
	Delete(ctx context.Context, id, userID string) error
}
