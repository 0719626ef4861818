package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (inventario).
// Igual que Customer: todo va filtrado por el userID dueño.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Product, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id, userID string) error
}
