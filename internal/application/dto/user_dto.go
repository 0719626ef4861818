package dto

import "time"

// SignupRequest payload de registro.
type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	Role         string `json:"role"` // opcional, por defecto admin (dueño del negocio)
}

// SigninRequest payload de login.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin credenciales (nunca expone el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthResponse token + usuario tras signup/signin.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RequestPasswordResetRequest solicita un token de recuperación por email.
type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consume el token de recuperación.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
