package entity

import "time"

// Categorías y estados válidos para Supplier.
const (
	SupplierCategoryHousehold   = "Household Items"
	SupplierCategoryElectronics = "Electronics"
	SupplierCategoryOthers      = "Others"

	SupplierStatusActive   = "Active"
	SupplierStatusInactive = "Inactive"
	SupplierStatusOnHold   = "On Hold"
)

// Supplier representa un proveedor del negocio.
// Igual que Sale, los proveedores son globales: no llevan UserID.
type Supplier struct {
	ID           string
	Name         string
	Category     string // Household Items, Electronics, Others
	LeadTimeDays int    // días de entrega, >= 0
	Rating       int    // 1..5
	Status       string // Active, Inactive, On Hold
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
