package repository

import (
	"context"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para Settings.
// Hay a lo sumo un documento por usuario; Upsert crea o reemplaza.
type SettingsRepository interface {
	GetByUser(ctx context.Context, userID string) (*entity.Settings, error)
	Upsert(ctx context.Context, settings *entity.Settings) error
}
