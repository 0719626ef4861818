package dto

import "time"

// UpsertSettingsRequest payload de POST /settings (crea o reemplaza el documento del usuario).
type UpsertSettingsRequest struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Locale       string `json:"locale"`
	Currency     string `json:"currency"`
	DateFormat   string `json:"date_format"`

	NotifyLowStock bool `json:"notify_low_stock"`
	NotifyOverdue  bool `json:"notify_overdue"`
	ExportEnabled  bool `json:"export_enabled"`
	AutoBackup     bool `json:"auto_backup"`
}

// SettingsResponse representación JSON de las preferencias del usuario.
type SettingsResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Locale       string `json:"locale"`
	Currency     string `json:"currency"`
	DateFormat   string `json:"date_format"`

	NotifyLowStock bool `json:"notify_low_stock"`
	NotifyOverdue  bool `json:"notify_overdue"`
	ExportEnabled  bool `json:"export_enabled"`
	AutoBackup     bool `json:"auto_backup"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
