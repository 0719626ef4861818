package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// SettingsUseCase gestiona el documento único de preferencias por usuario.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve las preferencias del usuario; ErrNotFound si aún no guardó ninguna.
func (uc *SettingsUseCase) Get(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(settings), nil
}

// Upsert crea o reemplaza el documento de preferencias del usuario.
func (uc *SettingsUseCase) Upsert(ctx context.Context, userID string, in dto.UpsertSettingsRequest) (*dto.SettingsResponse, error) {
	if in.BusinessName == "" {
		return nil, domain.NewValidationError("business_name", "requerido")
	}
	now := time.Now()
	settings := &entity.Settings{
		ID:           uuid.New().String(),
		UserID:       userID,
		BusinessName: in.BusinessName,
		OwnerName:    in.OwnerName,
		Phone:        in.Phone,
		Address:      in.Address,
		Locale:       in.Locale,
		Currency:     in.Currency,
		DateFormat:   in.DateFormat,

		NotifyLowStock: in.NotifyLowStock,
		NotifyOverdue:  in.NotifyOverdue,
		ExportEnabled:  in.ExportEnabled,
		AutoBackup:     in.AutoBackup,

		CreatedAt: now,
		UpdatedAt: now,
	}
	// Si ya existía un documento se conservan su id y fecha de creación.
	if existing, err := uc.repo.GetByUser(ctx, userID); err != nil {
		return nil, err
	} else if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}
	if err := uc.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:           s.ID,
		BusinessName: s.BusinessName,
		OwnerName:    s.OwnerName,
		Phone:        s.Phone,
		Address:      s.Address,
		Locale:       s.Locale,
		Currency:     s.Currency,
		DateFormat:   s.DateFormat,

		NotifyLowStock: s.NotifyLowStock,
		NotifyOverdue:  s.NotifyOverdue,
		ExportEnabled:  s.ExportEnabled,
		AutoBackup:     s.AutoBackup,

		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
