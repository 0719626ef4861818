package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// expenseDoc documento BSON de expenses.
type expenseDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Title     string    `bson:"title"`
	Amount    float64   `bson:"amount"`
	Category  string    `bson:"category,omitempty"`
	Date      time.Time `bson:"date"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// ExpenseRepo implementación de ExpenseRepository sobre MongoDB.
type ExpenseRepo struct {
	col *mongo.Collection
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepo {
	return &ExpenseRepo{col: db.Collection(colExpenses)}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if _, err := r.col.InsertOne(ctx, toExpenseDoc(expense)); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListByUser lista los gastos del usuario.
func (r *ExpenseRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Expense, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Expense
	for cursor.Next(ctx) {
		var doc expenseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		list = append(list, fromExpenseDoc(&doc))
	}
	return list, cursor.Err()
}

func toExpenseDoc(e *entity.Expense) *expenseDoc {
	return &expenseDoc{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Amount:    e.Amount.InexactFloat64(),
		Category:  e.Category,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func fromExpenseDoc(d *expenseDoc) *entity.Expense {
	return &entity.Expense{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Amount:    decimal.NewFromFloat(d.Amount),
		Category:  d.Category,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
