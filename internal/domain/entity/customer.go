package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Customer. "owed" se acepta en escritura y se pliega a "overdue".
const (
	CustomerStatusPaid    = "paid"
	CustomerStatusOverdue = "overdue"
)

// Customer representa un cliente del negocio con un paquete pendiente de pago.
// Propiedad de un User: toda consulta y mutación va filtrada por UserID.
type Customer struct {
	ID             string
	UserID         string
	Name           string
	PackageWorth   decimal.Decimal // valor del paquete en moneda local
	Quantity       int
	PaymentDueDate time.Time
	Status         string // paid, overdue
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
