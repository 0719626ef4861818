package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// customerDoc documento BSON de customers. Los montos se guardan como float64
// y se convierten a decimal en el borde del adaptador.
type customerDoc struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"user_id"`
	Name           string    `bson:"name"`
	PackageWorth   float64   `bson:"package_worth"`
	Quantity       int       `bson:"quantity"`
	PaymentDueDate time.Time `bson:"payment_due_date"`
	Status         string    `bson:"status"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// CustomerRepo implementación de CustomerRepository sobre MongoDB.
// Todos los filtros llevan user_id: un _id de otro usuario no matchea nunca.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection(colCustomers)}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if _, err := r.col.InsertOne(ctx, toCustomerDoc(customer)); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un cliente matcheando id + dueño; (nil, nil) si no hay match.
func (r *CustomerRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Customer, error) {
	var doc customerDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return fromCustomerDoc(&doc), nil
}

// ListByUser lista los clientes del usuario.
func (r *CustomerRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListByUserAndStatus lista los clientes del usuario con el estado dado.
func (r *CustomerRepo) ListByUserAndStatus(ctx context.Context, userID, status string) ([]*entity.Customer, error) {
	return r.list(ctx, bson.M{"user_id": userID, "status": status})
}

// Update reemplaza el documento matcheando id + dueño; ErrNotFound si no hubo match.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	res, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": customer.ID, "user_id": customer.UserID},
		toCustomerDoc(customer),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina matcheando id + dueño; ErrNotFound si no hubo match.
func (r *CustomerRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) list(ctx context.Context, filter bson.M) ([]*entity.Customer, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Customer
	for cursor.Next(ctx) {
		var doc customerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		list = append(list, fromCustomerDoc(&doc))
	}
	return list, cursor.Err()
}

func toCustomerDoc(c *entity.Customer) *customerDoc {
	return &customerDoc{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		PackageWorth:   c.PackageWorth.InexactFloat64(),
		Quantity:       c.Quantity,
		PaymentDueDate: c.PaymentDueDate,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func fromCustomerDoc(d *customerDoc) *entity.Customer {
	return &entity.Customer{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		PackageWorth:   decimal.NewFromFloat(d.PackageWorth),
		Quantity:       d.Quantity,
		PaymentDueDate: d.PaymentDueDate,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
