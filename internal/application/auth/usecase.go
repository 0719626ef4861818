package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"github.com/tu-usuario/negocio-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetMailer es el contrato mínimo para enviar el correo de recuperación.
// Lo implementa *smtp.Mailer; la interfaz evita acoplar el caso de uso a gomail.
type ResetMailer interface {
	SendPasswordReset(to, token string) error
}

// AuthUseCase casos de uso de autenticación: signup, signin y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ResetMailer
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ResetMailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Signup crea un usuario: hashea password con bcrypt, persiste y emite el token.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	verr := &domain.ValidationError{}
	if in.Name == "" {
		verr.Add("name", "requerido")
	}
	if in.Email == "" {
		verr.Add("email", "requerido")
	}
	if len(in.Password) < 8 {
		verr.Add("password", "debe tener al menos 8 caracteres")
	}
	if in.BusinessName == "" {
		verr.Add("business_name", "requerido")
	}
	if in.Role != "" && in.Role != entity.RoleAdmin && in.Role != entity.RoleStaff {
		verr.Add("role", "debe ser admin o staff")
	}
	if !verr.Empty() {
		return nil, verr
	}

	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		BusinessName: in.BusinessName,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Signin verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Signin(ctx context.Context, in dto.SigninRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("email", "email y password son requeridos")
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.authResponse(user)
}

// RequestPasswordReset genera un token de un solo uso (1h de vigencia), guarda su
// hash y envía el token en claro por correo. Si el email no existe responde igual
// que si existiera, para no revelar cuentas registradas.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.NewValidationError("email", "requerido")
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token, err := randomToken()
	if err != nil {
		return err
	}
	user.ResetToken = hashToken(token)
	user.ResetExpires = time.Now().Add(resetTokenTTL)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(user.Email, token)
}

// ResetPassword consume el token de recuperación y reemplaza la contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	verr := &domain.ValidationError{}
	if in.Token == "" {
		verr.Add("token", "requerido")
	}
	if len(in.Password) < 8 {
		verr.Add("password", "debe tener al menos 8 caracteres")
	}
	if !verr.Empty() {
		return verr
	}
	user, err := uc.userRepo.FindByResetToken(ctx, hashToken(in.Token))
	if err != nil {
		return err
	}
	if user == nil || user.ResetExpires.Before(time.Now()) {
		return domain.ErrResetTokenInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpires = time.Time{}
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.BusinessName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ToUserResponse convierte la entidad a DTO excluyendo siempre el hash de credenciales.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
