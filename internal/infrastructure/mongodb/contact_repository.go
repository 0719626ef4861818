package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// contactDoc documento BSON de contact_messages.
type contactDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

// ContactRepo implementación de ContactRepository sobre MongoDB.
type ContactRepo struct {
	col *mongo.Collection
}

// NewContactRepository construye el adaptador.
func NewContactRepository(db *mongo.Database) *ContactRepo {
	return &ContactRepo{col: db.Collection(colContacts)}
}

// Create persiste un mensaje del formulario de contacto.
func (r *ContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	doc := &contactDoc{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
