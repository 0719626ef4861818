package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes, siempre acotados al usuario dueño.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// normalizeCustomerStatus pliega el estado a minúsculas y traduce el sinónimo
// legado "owed" a "overdue". Devuelve "" si el valor no es reconocido.
func normalizeCustomerStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.CustomerStatusPaid:
		return entity.CustomerStatusPaid
	case entity.CustomerStatusOverdue, "owed":
		return entity.CustomerStatusOverdue
	default:
		return ""
	}
}

// Create crea un cliente del usuario indicado.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	verr := &domain.ValidationError{}
	if in.Name == "" {
		verr.Add("name", "requerido")
	}
	if in.PackageWorth == nil {
		verr.Add("package_worth", "requerido")
	} else if in.PackageWorth.IsNegative() {
		verr.Add("package_worth", "no puede ser negativo")
	}
	if in.Quantity == nil {
		verr.Add("quantity", "requerido")
	} else if *in.Quantity < 0 {
		verr.Add("quantity", "no puede ser negativo")
	}
	status := normalizeCustomerStatus(in.Status)
	if in.Status == "" {
		status = entity.CustomerStatusOverdue
	} else if status == "" {
		verr.Add("status", "debe ser paid u overdue")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		PackageWorth:   *in.PackageWorth,
		Quantity:       *in.Quantity,
		PaymentDueDate: in.PaymentDueDate,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del usuario. Un id de otro usuario es ErrNotFound.
func (uc *CustomerUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes del usuario.
func (uc *CustomerUseCase) List(ctx context.Context, userID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// ListOverdue lista los clientes del usuario con pago vencido.
func (uc *CustomerUseCase) ListOverdue(ctx context.Context, userID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByUserAndStatus(ctx, userID, entity.CustomerStatusOverdue)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza parcialmente un cliente del usuario.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		customer.Name = *in.Name
	}
	if in.PackageWorth != nil {
		if in.PackageWorth.IsNegative() {
			return nil, domain.NewValidationError("package_worth", "no puede ser negativo")
		}
		customer.PackageWorth = *in.PackageWorth
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "no puede ser negativo")
		}
		customer.Quantity = *in.Quantity
	}
	if in.PaymentDueDate != nil {
		customer.PaymentDueDate = *in.PaymentDueDate
	}
	if in.Status != nil {
		status := normalizeCustomerStatus(*in.Status)
		if status == "" {
			return nil, domain.NewValidationError("status", "debe ser paid u overdue")
		}
		customer.Status = status
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente del usuario.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, id, userID)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		PackageWorth:   c.PackageWorth,
		Quantity:       c.Quantity,
		PaymentDueDate: c.PaymentDueDate,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
