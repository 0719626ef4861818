package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// agentDoc agente embebido en el documento de la entrega.
type agentDoc struct {
	Name           string `bson:"name"`
	Type           string `bson:"type"`
	Phone          string `bson:"phone,omitempty"`
	CompletedCount int    `bson:"completed_count"`
}

// deliveryDoc documento BSON de deliveries.
type deliveryDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Customer  string    `bson:"customer"`
	Package   string    `bson:"package"`
	Date      time.Time `bson:"date"`
	Agent     agentDoc  `bson:"agent"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// DeliveryRepo implementación de DeliveryRepository sobre MongoDB.
type DeliveryRepo struct {
	col *mongo.Collection
}

// NewDeliveryRepository construye el adaptador.
func NewDeliveryRepository(db *mongo.Database) *DeliveryRepo {
	return &DeliveryRepo{col: db.Collection(colDeliveries)}
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(ctx context.Context, delivery *entity.Delivery) error {
	if _, err := r.col.InsertOne(ctx, toDeliveryDoc(delivery)); err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene una entrega matcheando id + dueño; (nil, nil) si no hay match.
func (r *DeliveryRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Delivery, error) {
	var doc deliveryDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return fromDeliveryDoc(&doc), nil
}

// ListByUser lista las entregas del usuario.
func (r *DeliveryRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Delivery, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Delivery
	for cursor.Next(ctx) {
		var doc deliveryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode delivery: %w", err)
		}
		list = append(list, fromDeliveryDoc(&doc))
	}
	return list, cursor.Err()
}

// Update reemplaza el documento matcheando id + dueño; ErrNotFound si no hubo match.
func (r *DeliveryRepo) Update(ctx context.Context, delivery *entity.Delivery) error {
	res, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": delivery.ID, "user_id": delivery.UserID},
		toDeliveryDoc(delivery),
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina matcheando id + dueño; ErrNotFound si no hubo match.
func (r *DeliveryRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDeliveryDoc(d *entity.Delivery) *deliveryDoc {
	return &deliveryDoc{
		ID:       d.ID,
		UserID:   d.UserID,
		Customer: d.Customer,
		Package:  d.Package,
		Date:     d.Date,
		Agent: agentDoc{
			Name:           d.Agent.Name,
			Type:           d.Agent.Type,
			Phone:          d.Agent.Phone,
			CompletedCount: d.Agent.CompletedCount,
		},
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromDeliveryDoc(doc *deliveryDoc) *entity.Delivery {
	return &entity.Delivery{
		ID:       doc.ID,
		UserID:   doc.UserID,
		Customer: doc.Customer,
		Package:  doc.Package,
		Date:     doc.Date,
		Agent: entity.DeliveryAgent{
			Name:           doc.Agent.Name,
			Type:           doc.Agent.Type,
			Phone:          doc.Agent.Phone,
			CompletedCount: doc.Agent.CompletedCount,
		},
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
