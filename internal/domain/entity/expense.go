package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto del negocio. Propiedad de un User.
// Alimenta el cálculo de utilidad del dashboard (ventas - gastos).
type Expense struct {
	ID        string
	UserID    string
	Title     string
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
