package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema (dueño o empleado de un negocio).
// Nunca se elimina en caliente; Status permite desactivarlo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	BusinessName string
	Role         string // admin, staff
	Status       string // active, inactive
	ResetToken   string // hash SHA-256 del token de recuperación, vacío si no hay uno pendiente
	ResetExpires time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
