package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen financiero: utilidad = ventas - gastos.
// Todos los totales parten de 0 cuando no hay documentos.
type DashboardSummaryDTO struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
}
