package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario del negocio.
// Propiedad de un User. Los estados bajo-stock / sin-stock / vencido son
// derivados y nunca se persisten.
type Product struct {
	ID           string
	UserID       string
	Name         string
	StockLevel   int
	ReorderLevel int
	ExpiryDate   time.Time
	Category     string
	UnitPrice    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOutOfStock indica stock agotado (stock <= 0).
func (p *Product) IsOutOfStock() bool {
	return p.StockLevel <= 0
}

// IsLowStock indica stock bajo: hay existencias pero por debajo del punto de reorden.
// Un producto agotado NO es bajo-stock (exige stock > 0).
func (p *Product) IsLowStock() bool {
	return p.StockLevel > 0 && p.StockLevel < p.ReorderLevel
}

// IsExpired indica si el producto venció respecto al instante dado.
func (p *Product) IsExpired(now time.Time) bool {
	return !p.ExpiryDate.IsZero() && p.ExpiryDate.Before(now)
}
