package entity

import "time"

// ContactMessage es un mensaje del formulario público de contacto.
// Se persiste y dispara una notificación por correo al administrador.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
