package entity

import "time"

// Settings es el documento único de preferencias por usuario (upsert).
type Settings struct {
	ID           string
	UserID       string
	BusinessName string
	OwnerName    string
	Phone        string
	Address      string
	Locale       string // ej. "es-CO"
	Currency     string // ej. "COP"
	DateFormat   string // ej. "DD/MM/YYYY"

	NotifyLowStock bool
	NotifyOverdue  bool
	ExportEnabled  bool
	AutoBackup     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
