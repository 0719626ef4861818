package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/negocio-api/internal/application/auth"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/negocio-api/pkg/jwt"
)

// fakeUserRepo usuarios en memoria, indexados por id, email y reset token.
type fakeUserRepo struct {
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetToken(_ context.Context, tokenHash string) (*entity.User, error) {
	for _, u := range f.items {
		if u.ResetToken != "" && u.ResetToken == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.items[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

// fakeMailer captura el último correo de recuperación enviado.
type fakeMailer struct {
	to    string
	token string
	sent  int
}

func (f *fakeMailer) SendPasswordReset(to, token string) error {
	f.to, f.token = to, token
	f.sent++
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "negocio-api-test"}

func signupReq() dto.SignupRequest {
	return dto.SignupRequest{
		Name:         "Rosa",
		Email:        "rosa@negocio.test",
		Password:     "supersegura1",
		BusinessName: "Tienda Rosa",
	}
}

func TestSignup_EmiteTokenYOcultaHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, &fakeMailer{}, testJWT)

	resp, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role, "sin rol explícito el registrado es admin")
	assert.Equal(t, "active", resp.User.Status)

	claims, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "Tienda Rosa", claims.BusinessName)

	// El hash queda en la entidad persistida, nunca en la respuesta.
	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "supersegura1", stored.PasswordHash)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeMailer{}, testJWT)

	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), signupReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_Validaciones(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeMailer{}, testJWT)

	req := signupReq()
	req.Password = "corta"
	req.BusinessName = ""
	req.Role = "gerente"
	_, err := uc.Signup(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "business_name")
	assert.Contains(t, verr.Fields, "role")
}

func TestSignin_OK(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeMailer{}, testJWT)

	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	resp, err := uc.Signin(context.Background(), dto.SigninRequest{
		Email:    "rosa@negocio.test",
		Password: "supersegura1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Email inexistente y password incorrecta fallan igual: credenciales inválidas.
func TestSignin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeMailer{}, testJWT)

	_, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = uc.Signin(context.Background(), dto.SigninRequest{
		Email:    "nadie@negocio.test",
		Password: "supersegura1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Signin(context.Background(), dto.SigninRequest{
		Email:    "rosa@negocio.test",
		Password: "incorrecta123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, &fakeMailer{}, testJWT)

	resp, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), resp.User.ID)
	stored.Status = "inactive"
	require.NoError(t, repo.Update(context.Background(), stored))

	_, err = uc.Signin(context.Background(), dto.SigninRequest{
		Email:    "rosa@negocio.test",
		Password: "supersegura1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordReset_FlujoCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, mailer, testJWT)

	created, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "rosa@negocio.test"))
	require.Equal(t, 1, mailer.sent)
	require.NotEmpty(t, mailer.token)
	assert.Equal(t, "rosa@negocio.test", mailer.to)

	// El token viaja en claro por correo pero se guarda hasheado.
	stored, _ := repo.GetByID(context.Background(), created.User.ID)
	assert.NotEmpty(t, stored.ResetToken)
	assert.NotEqual(t, mailer.token, stored.ResetToken)

	require.NoError(t, uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    mailer.token,
		Password: "nuevaclave123",
	}))

	// La nueva contraseña funciona y el token quedó consumido.
	_, err = uc.Signin(context.Background(), dto.SigninRequest{
		Email:    "rosa@negocio.test",
		Password: "nuevaclave123",
	})
	assert.NoError(t, err)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    mailer.token,
		Password: "otraclave123",
	})
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid, "el token es de un solo uso")
}

// Pedir recuperación para un email desconocido no es error ni envía nada:
// la respuesta no revela qué cuentas existen.
func TestPasswordReset_EmailDesconocidoSilencioso(t *testing.T) {
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(newFakeUserRepo(), mailer, testJWT)

	err := uc.RequestPasswordReset(context.Background(), "nadie@negocio.test")
	assert.NoError(t, err)
	assert.Zero(t, mailer.sent)
}

func TestPasswordReset_TokenVencido(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, mailer, testJWT)

	created, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	require.NoError(t, uc.RequestPasswordReset(context.Background(), "rosa@negocio.test"))

	stored, _ := repo.GetByID(context.Background(), created.User.ID)
	stored.ResetExpires = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Update(context.Background(), stored))

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    mailer.token,
		Password: "nuevaclave123",
	})
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

func TestPasswordReset_TokenAjeno(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeMailer{}, testJWT)

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    "algo-inventado",
		Password: "nuevaclave123",
	})
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

// bcrypt de verdad: el hash almacenado valida contra la contraseña original.
func TestSignup_HashBcryptVerificable(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, &fakeMailer{}, testJWT)

	resp, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), resp.User.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersegura1")))
}
