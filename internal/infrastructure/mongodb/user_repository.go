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

var _ repository.UserRepository = (*UserRepo)(nil)

// userDoc documento BSON de users.
type userDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Name         string    `bson:"name"`
	BusinessName string    `bson:"business_name"`
	Role         string    `bson:"role"`
	Status       string    `bson:"status"`
	ResetToken   string    `bson:"reset_token,omitempty"`
	ResetExpires time.Time `bson:"reset_expires,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// UserRepo implementación de UserRepository sobre MongoDB.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(colUsers)}
}

// Create persiste un nuevo usuario. El índice único de email convierte el
// duplicado en ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.col.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByResetToken obtiene el usuario con ese hash de token pendiente; (nil, nil) si no hay.
func (r *UserRepo) FindByResetToken(ctx context.Context, tokenHash string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"reset_token": tokenHash})
}

// Update reemplaza el documento del usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, toUserDoc(user))
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return fromUserDoc(&doc), nil
}

func toUserDoc(u *entity.User) *userDoc {
	return &userDoc{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Role:         u.Role,
		Status:       u.Status,
		ResetToken:   u.ResetToken,
		ResetExpires: u.ResetExpires,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserDoc(d *userDoc) *entity.User {
	return &entity.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		BusinessName: d.BusinessName,
		Role:         d.Role,
		Status:       d.Status,
		ResetToken:   d.ResetToken,
		ResetExpires: d.ResetExpires,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
