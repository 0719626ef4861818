package dto

// ContactRequest payload del formulario público de contacto.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
