package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultTopRatedLimit = 5

// titleCaser capitaliza la primera letra de cada palabra ("on hold" -> "On Hold").
var titleCaser = cases.Title(language.English)

// SupplierUseCase casos de uso CRUD para proveedores.
// Los proveedores son globales: el directorio se comparte entre usuarios.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// normalizeSupplierStatus capitaliza y valida contra los estados fijos.
// Devuelve "" si el valor no es reconocido.
func normalizeSupplierStatus(s string) string {
	normalized := titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case entity.SupplierStatusActive, entity.SupplierStatusInactive, entity.SupplierStatusOnHold:
		return normalized
	default:
		return ""
	}
}

func normalizeSupplierCategory(s string) string {
	normalized := titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case entity.SupplierCategoryHousehold, entity.SupplierCategoryElectronics, entity.SupplierCategoryOthers:
		return normalized
	default:
		return ""
	}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	verr := &domain.ValidationError{}
	if in.Name == "" {
		verr.Add("name", "requerido")
	}
	category := normalizeSupplierCategory(in.Category)
	if category == "" {
		verr.Add("category", "debe ser Household Items, Electronics u Others")
	}
	if in.LeadTimeDays == nil {
		verr.Add("lead_time_days", "requerido")
	} else if *in.LeadTimeDays < 0 {
		verr.Add("lead_time_days", "no puede ser negativo")
	}
	if in.Rating == nil {
		verr.Add("rating", "requerido")
	} else if *in.Rating < 1 || *in.Rating > 5 {
		verr.Add("rating", "debe estar entre 1 y 5")
	}
	status := normalizeSupplierStatus(in.Status)
	if in.Status == "" {
		status = entity.SupplierStatusActive
	} else if status == "" {
		verr.Add("status", "debe ser Active, Inactive u On Hold")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     category,
		LeadTimeDays: *in.LeadTimeDays,
		Rating:       *in.Rating,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// TopRated devuelve los proveedores mejor calificados, orden descendente por
// rating. limit <= 0 usa el tope por defecto (5).
func (uc *SupplierUseCase) TopRated(ctx context.Context, limit int) ([]*dto.SupplierResponse, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Rating > list[j].Rating
	})
	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update actualiza parcialmente un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		supplier.Name = *in.Name
	}
	if in.Category != nil {
		category := normalizeSupplierCategory(*in.Category)
		if category == "" {
			return nil, domain.NewValidationError("category", "debe ser Household Items, Electronics u Others")
		}
		supplier.Category = category
	}
	if in.LeadTimeDays != nil {
		if *in.LeadTimeDays < 0 {
			return nil, domain.NewValidationError("lead_time_days", "no puede ser negativo")
		}
		supplier.LeadTimeDays = *in.LeadTimeDays
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, domain.NewValidationError("rating", "debe estar entre 1 y 5")
		}
		supplier.Rating = *in.Rating
	}
	if in.Status != nil {
		status := normalizeSupplierStatus(*in.Status)
		if status == "" {
			return nil, domain.NewValidationError("status", "debe ser Active, Inactive u On Hold")
		}
		supplier.Status = status
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
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
