// Package mongodb implementa los puertos de persistencia sobre MongoDB.
// Cada operación es atómica a nivel de documento; no se usan transacciones
// multi-documento.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/negocio-api/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones.
const (
	colUsers      = "users"
	colCustomers  = "customers"
	colProducts   = "products"
	colSales      = "sales"
	colDeliveries = "deliveries"
	colSuppliers  = "suppliers"
	colSettings   = "settings"
	colExpenses   = "expenses"
	colContacts   = "contact_messages"
)

// Connect abre el cliente, verifica la conexión con ping y devuelve la base.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.ConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que el modelo de propiedad necesita:
// email único en users y user_id en las colecciones acotadas por dueño.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	if _, err := db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("mongodb: índice users.email: %w", err)
	}
	for _, col := range []string{colCustomers, colProducts, colDeliveries, colExpenses} {
		if _, err := db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		}); err != nil {
			return fmt.Errorf("mongodb: índice %s.user_id: %w", col, err)
		}
	}
	if _, err := db.Collection(colSettings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("mongodb: índice settings.user_id: %w", err)
	}
	return nil
}
