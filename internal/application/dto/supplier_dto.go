package dto

import "time"

// CreateSupplierRequest payload de alta de proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"` // Household Items | Electronics | Others
	LeadTimeDays *int   `json:"lead_time_days"`
	Rating       *int   `json:"rating"` // 1..5
	Status       string `json:"status"` // Active | Inactive | On Hold
}

// UpdateSupplierRequest payload parcial de actualización.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	LeadTimeDays *int    `json:"lead_time_days"`
	Rating       *int    `json:"rating"`
	Status       *string `json:"status"`
}

// SupplierResponse representación JSON de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	LeadTimeDays int       `json:"lead_time_days"`
	Rating       int       `json:"rating"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
