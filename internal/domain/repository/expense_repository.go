package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (acotado por dueño).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Expense, error)
}
