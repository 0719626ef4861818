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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// saleDoc documento BSON de sales. Sin user_id: las ventas son globales.
type saleDoc struct {
	ID           string    `bson:"_id"`
	ProductName  string    `bson:"product_name"`
	Amount       float64   `bson:"amount"`
	PaymentType  string    `bson:"payment_type"`
	CustomerName string    `bson:"customer_name"`
	Status       string    `bson:"status"`
	Date         time.Time `bson:"date"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// SaleRepo implementación de SaleRepository sobre MongoDB.
type SaleRepo struct {
	col *mongo.Collection
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(db *mongo.Database) *SaleRepo {
	return &SaleRepo{col: db.Collection(colSales)}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if _, err := r.col.InsertOne(ctx, toSaleDoc(sale)); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var doc saleDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return fromSaleDoc(&doc), nil
}

// List escanea la colección completa (los reportes agregan en memoria).
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Sale
	for cursor.Next(ctx) {
		var doc saleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		list = append(list, fromSaleDoc(&doc))
	}
	return list, cursor.Err()
}

// Update reemplaza el documento; ErrNotFound si el id no existe.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sale.ID}, toSaleDoc(sale))
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta; ErrNotFound si el id no existe.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toSaleDoc(s *entity.Sale) *saleDoc {
	return &saleDoc{
		ID:           s.ID,
		ProductName:  s.ProductName,
		Amount:       s.Amount.InexactFloat64(),
		PaymentType:  s.PaymentType,
		CustomerName: s.CustomerName,
		Status:       s.Status,
		Date:         s.Date,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func fromSaleDoc(d *saleDoc) *entity.Sale {
	return &entity.Sale{
		ID:           d.ID,
		ProductName:  d.ProductName,
		Amount:       decimal.NewFromFloat(d.Amount),
		PaymentType:  d.PaymentType,
		CustomerName: d.CustomerName,
		Status:       d.Status,
		Date:         d.Date,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
