package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones exigen el userID dueño: un id que existe pero
// pertenece a otro usuario se comporta como inexistente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Customer, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error)
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]*entity.Customer, error)
	// Update actualiza matcheando id + dueño; devuelve domain.ErrNotFound si no hubo match.
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete elimina matcheando id + dueño; devuelve domain.ErrNotFound si no hubo match.
	Delete(ctx context.Context, id, userID string) error
}
