package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest payload de alta de producto de inventario.
type CreateProductRequest struct {
	Name         string           `json:"name"`
	StockLevel   *int             `json:"stock_level"`
	ReorderLevel *int             `json:"reorder_level"`
	ExpiryDate   time.Time        `json:"expiry_date"`
	Category     string           `json:"category"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest payload parcial de actualización.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	StockLevel   *int             `json:"stock_level"`
	ReorderLevel *int             `json:"reorder_level"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
	Category     *string          `json:"category"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	StockLevel   int             `json:"stock_level"`
	ReorderLevel int             `json:"reorder_level"`
	ExpiryDate   time.Time       `json:"expiry_date"`
	Category     string          `json:"category"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InventoryNotificationsResponse junta los tres escaneos independientes.
// Total es la suma de los tres tamaños: un producto que cae en dos predicados
// se cuenta dos veces.
type InventoryNotificationsResponse struct {
	LowStock   []ProductResponse `json:"low_stock"`
	OutOfStock []ProductResponse `json:"out_of_stock"`
	Expired    []ProductResponse `json:"expired"`
	Total      int               `json:"total"`
}
