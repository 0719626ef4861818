package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// settingsDoc documento BSON de settings (uno por usuario, índice único en user_id).
type settingsDoc struct {
	ID           string `bson:"_id"`
	UserID       string `bson:"user_id"`
	BusinessName string `bson:"business_name"`
	OwnerName    string `bson:"owner_name,omitempty"`
	Phone        string `bson:"phone,omitempty"`
	Address      string `bson:"address,omitempty"`
	Locale       string `bson:"locale,omitempty"`
	Currency     string `bson:"currency,omitempty"`
	DateFormat   string `bson:"date_format,omitempty"`

	NotifyLowStock bool `bson:"notify_low_stock"`
	NotifyOverdue  bool `bson:"notify_overdue"`
	ExportEnabled  bool `bson:"export_enabled"`
	AutoBackup     bool `bson:"auto_backup"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SettingsRepo implementación de SettingsRepository sobre MongoDB.
type SettingsRepo struct {
	col *mongo.Collection
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{col: db.Collection(colSettings)}
}

// GetByUser obtiene el documento del usuario; (nil, nil) si aún no existe.
func (r *SettingsRepo) GetByUser(ctx context.Context, userID string) (*entity.Settings, error) {
	var doc settingsDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return fromSettingsDoc(&doc), nil
}

// Upsert crea o reemplaza el documento del usuario (semántica de POST /settings).
func (r *SettingsRepo) Upsert(ctx context.Context, settings *entity.Settings) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"user_id": settings.UserID},
		toSettingsDoc(settings),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func toSettingsDoc(s *entity.Settings) *settingsDoc {
	return &settingsDoc{
		ID:           s.ID,
		UserID:       s.UserID,
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

func fromSettingsDoc(d *settingsDoc) *entity.Settings {
	return &entity.Settings{
		ID:           d.ID,
		UserID:       d.UserID,
		BusinessName: d.BusinessName,
		OwnerName:    d.OwnerName,
		Phone:        d.Phone,
		Address:      d.Address,
		Locale:       d.Locale,
		Currency:     d.Currency,
		DateFormat:   d.DateFormat,

		NotifyLowStock: d.NotifyLowStock,
		NotifyOverdue:  d.NotifyOverdue,
		ExportEnabled:  d.ExportEnabled,
		AutoBackup:     d.AutoBackup,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
