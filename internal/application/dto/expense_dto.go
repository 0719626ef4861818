package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest payload de registro de gasto.
type CreateExpenseRequest struct {
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
	Date     time.Time        `json:"date"`
}

// ExpenseResponse representación JSON de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
