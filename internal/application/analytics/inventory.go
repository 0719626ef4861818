package analytics

import (
	"context"
	"time"

	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// InventoryReportsUseCase escaneos read-only del inventario del usuario:
// bajo stock, sin stock, vencidos y la notificación combinada.
type InventoryReportsUseCase struct {
	repo repository.ProductRepository
}

// NewInventoryReportsUseCase construye el caso de uso.
func NewInventoryReportsUseCase(repo repository.ProductRepository) *InventoryReportsUseCase {
	return &InventoryReportsUseCase{repo: repo}
}

// LowStock productos con existencias por debajo del punto de reorden (stock > 0).
func (uc *InventoryReportsUseCase) LowStock(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	return uc.scan(ctx, userID, func(p *entity.Product, _ time.Time) bool { return p.IsLowStock() })
}

// OutOfStock productos con stock agotado.
func (uc *InventoryReportsUseCase) OutOfStock(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	return uc.scan(ctx, userID, func(p *entity.Product, _ time.Time) bool { return p.IsOutOfStock() })
}

// Expired productos vencidos respecto a ahora.
func (uc *InventoryReportsUseCase) Expired(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	return uc.scan(ctx, userID, func(p *entity.Product, now time.Time) bool { return p.IsExpired(now) })
}

// Notifications combina los tres escaneos en una sola respuesta.
// Total es la suma de los tamaños: un producto que cae en dos predicados se
// cuenta dos veces.
func (uc *InventoryReportsUseCase) Notifications(ctx context.Context, userID string) (*dto.InventoryNotificationsResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := &dto.InventoryNotificationsResponse{
		LowStock:   []dto.ProductResponse{},
		OutOfStock: []dto.ProductResponse{},
		Expired:    []dto.ProductResponse{},
	}
	for _, p := range list {
		if p.IsLowStock() {
			out.LowStock = append(out.LowStock, toProductResponse(p))
		}
		if p.IsOutOfStock() {
			out.OutOfStock = append(out.OutOfStock, toProductResponse(p))
		}
		if p.IsExpired(now) {
			out.Expired = append(out.Expired, toProductResponse(p))
		}
	}
	out.Total = len(out.LowStock) + len(out.OutOfStock) + len(out.Expired)
	return out, nil
}

func (uc *InventoryReportsUseCase) scan(ctx context.Context, userID string, match func(*entity.Product, time.Time) bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if match(p, now) {
			out = append(out, toProductResponse(p))
		}
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
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
