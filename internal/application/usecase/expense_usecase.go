package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// ExpenseUseCase registra y lista gastos del usuario; el dashboard los usa
// para calcular la utilidad (ventas - gastos).
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto del usuario indicado.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	verr := &domain.ValidationError{}
	if in.Title == "" {
		verr.Add("title", "requerido")
	}
	if in.Amount == nil {
		verr.Add("amount", "requerido")
	} else if !in.Amount.IsPositive() {
		verr.Add("amount", "debe ser mayor que cero")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		Amount:    *in.Amount,
		Category:  in.Category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista los gastos del usuario.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string) ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
