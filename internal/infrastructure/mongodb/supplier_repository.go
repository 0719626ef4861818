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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// supplierDoc documento BSON de suppliers. Sin user_id (alcance global).
type supplierDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Category     string    `bson:"category"`
	LeadTimeDays int       `bson:"lead_time_days"`
	Rating       int       `bson:"rating"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// SupplierRepo implementación de SupplierRepository sobre MongoDB.
type SupplierRepo struct {
	col *mongo.Collection
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{col: db.Collection(colSuppliers)}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if _, err := r.col.InsertOne(ctx, toSupplierDoc(supplier)); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var doc supplierDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return fromSupplierDoc(&doc), nil
}

// List lista todos los proveedores.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Supplier
	for cursor.Next(ctx) {
		var doc supplierDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode supplier: %w", err)
		}
		list = append(list, fromSupplierDoc(&doc))
	}
	return list, cursor.Err()
}

// Update reemplaza el documento; ErrNotFound si el id no existe.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": supplier.ID}, toSupplierDoc(supplier))
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor; ErrNotFound si el id no existe.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toSupplierDoc(s *entity.Supplier) *supplierDoc {
	return &supplierDoc{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		LeadTimeDays: s.LeadTimeDays,
		Rating:       s.Rating,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func fromSupplierDoc(d *supplierDoc) *entity.Supplier {
	return &entity.Supplier{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		LeadTimeDays: d.LeadTimeDays,
		Rating:       d.Rating,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
