package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest payload de alta de cliente. Los numéricos requeridos
// son punteros para distinguir "ausente" de cero.
type CreateCustomerRequest struct {
	Name           string           `json:"name"`
	PackageWorth   *decimal.Decimal `json:"package_worth"`
	Quantity       *int             `json:"quantity"`
	PaymentDueDate time.Time        `json:"payment_due_date"`
	Status         string           `json:"status"` // paid | overdue (acepta "owed")
}

// UpdateCustomerRequest payload parcial de actualización.
type UpdateCustomerRequest struct {
	Name           *string          `json:"name"`
	PackageWorth   *decimal.Decimal `json:"package_worth"`
	Quantity       *int             `json:"quantity"`
	PaymentDueDate *time.Time       `json:"payment_due_date"`
	Status         *string          `json:"status"`
}

// CustomerResponse representación JSON de un cliente.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PackageWorth   decimal.Decimal `json:"package_worth"`
	Quantity       int             `json:"quantity"`
	PaymentDueDate time.Time       `json:"payment_due_date"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
