package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// ContactMailer es el contrato mínimo para notificar un mensaje de contacto.
// Lo implementa *smtp.Mailer.
type ContactMailer interface {
	SendContactNotification(name, email, message string) error
}

// ContactUseCase persiste mensajes del formulario público y notifica por correo.
// El fallo del correo no tumba la petición: el mensaje ya quedó guardado.
type ContactUseCase struct {
	repo   repository.ContactRepository
	mailer ContactMailer
	log    zerolog.Logger
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, mailer ContactMailer, log zerolog.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, mailer: mailer, log: log}
}

// Submit valida, persiste y notifica un mensaje de contacto.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest) error {
	verr := &domain.ValidationError{}
	if in.Name == "" {
		verr.Add("name", "requerido")
	}
	if !strings.Contains(in.Email, "@") {
		verr.Add("email", "debe ser un email válido")
	}
	if in.Message == "" {
		verr.Add("message", "requerido")
	}
	if !verr.Empty() {
		return verr
	}

	msg := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return err
	}
	if err := uc.mailer.SendContactNotification(in.Name, in.Email, in.Message); err != nil {
		uc.log.Error().Err(err).Str("contact_id", msg.ID).Msg("notificación de contacto no enviada")
	}
	return nil
}
