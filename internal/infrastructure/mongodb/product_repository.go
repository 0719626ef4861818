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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDoc documento BSON de products.
type productDoc struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"user_id"`
	Name         string    `bson:"name"`
	StockLevel   int       `bson:"stock_level"`
	ReorderLevel int       `bson:"reorder_level"`
	ExpiryDate   time.Time `bson:"expiry_date,omitempty"`
	Category     string    `bson:"category,omitempty"`
	UnitPrice    float64   `bson:"unit_price"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// ProductRepo implementación de ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(colProducts)}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.col.InsertOne(ctx, toProductDoc(product)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un producto matcheando id + dueño; (nil, nil) si no hay match.
func (r *ProductRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Product, error) {
	var doc productDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return fromProductDoc(&doc), nil
}

// ListByUser lista los productos del usuario.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		list = append(list, fromProductDoc(&doc))
	}
	return list, cursor.Err()
}

// Update reemplaza el documento matcheando id + dueño; ErrNotFound si no hubo match.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": product.ID, "user_id": product.UserID},
		toProductDoc(product),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina matcheando id + dueño; ErrNotFound si no hubo match.
func (r *ProductRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		StockLevel:   p.StockLevel,
		ReorderLevel: p.ReorderLevel,
		ExpiryDate:   p.ExpiryDate,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice.InexactFloat64(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromProductDoc(d *productDoc) *entity.Product {
	return &entity.Product{
		ID:           d.ID,
		UserID:       d.UserID,
		Name:         d.Name,
		StockLevel:   d.StockLevel,
		ReorderLevel: d.ReorderLevel,
		ExpiryDate:   d.ExpiryDate,
		Category:     d.Category,
		UnitPrice:    decimal.NewFromFloat(d.UnitPrice),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
