package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el inventario, acotados al usuario dueño.
// Los estados bajo-stock / sin-stock / vencido se derivan en los reportes, no aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto del usuario indicado.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	verr := &domain.ValidationError{}
	if in.Name == "" {
		verr.Add("name", "requerido")
	}
	if in.StockLevel == nil {
		verr.Add("stock_level", "requerido")
	}
	if in.ReorderLevel == nil {
		verr.Add("reorder_level", "requerido")
	} else if *in.ReorderLevel < 0 {
		verr.Add("reorder_level", "no puede ser negativo")
	}
	if in.UnitPrice == nil {
		verr.Add("unit_price", "requerido")
	} else if in.UnitPrice.IsNegative() {
		verr.Add("unit_price", "no puede ser negativo")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		StockLevel:   *in.StockLevel,
		ReorderLevel: *in.ReorderLevel,
		ExpiryDate:   in.ExpiryDate,
		Category:     in.Category,
		UnitPrice:    *in.UnitPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del usuario. Un id de otro usuario es ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario.
func (uc *ProductUseCase) List(ctx context.Context, userID string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza parcialmente un producto del usuario.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		product.Name = *in.Name
	}
	if in.StockLevel != nil {
		product.StockLevel = *in.StockLevel
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.NewValidationError("reorder_level", "no puede ser negativo")
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = *in.ExpiryDate
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.NewValidationError("unit_price", "no puede ser negativo")
		}
		product.UnitPrice = *in.UnitPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del usuario.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, id, userID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		StockLevel:   p.StockLevel,
		ReorderLevel: p.ReorderLevel,
		ExpiryDate:   p.ExpiryDate,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
