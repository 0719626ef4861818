package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y tipos de pago válidos para Sale.
const (
	SaleStatusCompleted = "completed"
	SaleStatusPending   = "pending"

	PaymentTypeCash   = "cash"
	PaymentTypeMobile = "mobile"
)

// Sale representa una venta registrada.
// Las ventas no están acotadas por usuario: la visibilidad es global.
type Sale struct {
	ID           string
	ProductName  string
	Amount       decimal.Decimal
	PaymentType  string // cash, mobile
	CustomerName string
	Status       string // completed, pending
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
