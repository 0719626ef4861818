package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest payload de registro de venta.
type CreateSaleRequest struct {
	ProductName  string           `json:"product_name"`
	Amount       *decimal.Decimal `json:"amount"`
	PaymentType  string           `json:"payment_type"` // cash | mobile
	CustomerName string           `json:"customer_name"`
	Status       string           `json:"status"` // completed | pending (por defecto pending)
	Date         time.Time        `json:"date"`
}

// UpdateSaleRequest payload parcial de actualización.
type UpdateSaleRequest struct {
	ProductName  *string          `json:"product_name"`
	Amount       *decimal.Decimal `json:"amount"`
	PaymentType  *string          `json:"payment_type"`
	CustomerName *string          `json:"customer_name"`
	Status       *string          `json:"status"`
	Date         *time.Time       `json:"date"`
}

// SaleResponse representación JSON de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentType  string          `json:"payment_type"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SalesSummaryResponse KPIs de ventas: total, por medio de pago y conteos por estado.
type SalesSummaryResponse struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	CashSales      decimal.Decimal `json:"cash_sales"`
	MobileSales    decimal.Decimal `json:"mobile_sales"`
	CompletedCount int             `json:"completed_count"`
	PendingCount   int             `json:"pending_count"`
}

// YearTotal total de ventas de un año calendario (vista yearly).
type YearTotal struct {
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// SalesAnalyticsResponse ventas agrupadas por mes calendario (índices 0-11,
// vista monthly) o por año (vista yearly).
type SalesAnalyticsResponse struct {
	View    string            `json:"view"`
	Monthly []decimal.Decimal `json:"monthly,omitempty"` // 12 posiciones, enero = 0
	Yearly  []YearTotal       `json:"yearly,omitempty"`
}

// TopEntryResponse entrada de un ranking por valor (cliente o producto).
type TopEntryResponse struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}
