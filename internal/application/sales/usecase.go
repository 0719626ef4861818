// Package sales contiene los casos de uso de ventas: CRUD y los reportes
// (KPIs, analítica mensual/anual, rankings).
package sales

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

// SaleUseCase casos de uso CRUD para ventas.
// Las ventas son globales: no se filtran por dueño.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

func normalizeSaleStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.SaleStatusCompleted:
		return entity.SaleStatusCompleted
	case entity.SaleStatusPending:
		return entity.SaleStatusPending
	default:
		return ""
	}
}

func normalizePaymentType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.PaymentTypeCash:
		return entity.PaymentTypeCash
	case entity.PaymentTypeMobile:
		return entity.PaymentTypeMobile
	default:
		return ""
	}
}

// Create registra una venta.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	verr := &domain.ValidationError{}
	if in.ProductName == "" {
		verr.Add("product_name", "requerido")
	}
	if in.Amount == nil {
		verr.Add("amount", "requerido")
	} else if !in.Amount.IsPositive() {
		verr.Add("amount", "debe ser mayor que cero")
	}
	paymentType := normalizePaymentType(in.PaymentType)
	if paymentType == "" {
		verr.Add("payment_type", "debe ser cash o mobile")
	}
	if in.CustomerName == "" {
		verr.Add("customer_name", "requerido")
	}
	status := normalizeSaleStatus(in.Status)
	if in.Status == "" {
		status = entity.SaleStatusPending
	} else if status == "" {
		verr.Add("status", "debe ser completed o pending")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ProductName:  in.ProductName,
		Amount:       *in.Amount,
		PaymentType:  paymentType,
		CustomerName: in.CustomerName,
		Status:       status,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas.
func (uc *SaleUseCase) List(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Update actualiza parcialmente una venta.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductName != nil {
		if *in.ProductName == "" {
			return nil, domain.NewValidationError("product_name", "no puede quedar vacío")
		}
		sale.ProductName = *in.ProductName
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
		}
		sale.Amount = *in.Amount
	}
	if in.PaymentType != nil {
		paymentType := normalizePaymentType(*in.PaymentType)
		if paymentType == "" {
			return nil, domain.NewValidationError("payment_type", "debe ser cash o mobile")
		}
		sale.PaymentType = paymentType
	}
	if in.CustomerName != nil {
		sale.CustomerName = *in.CustomerName
	}
	if in.Status != nil {
		status := normalizeSaleStatus(*in.Status)
		if status == "" {
			return nil, domain.NewValidationError("status", "debe ser completed o pending")
		}
		sale.Status = status
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Complete marca la venta como completada. Es idempotente: completar una venta
// ya completada no es error y la deja igual.
func (uc *SaleUseCase) Complete(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusCompleted {
		return toSaleResponse(sale), nil
	}
	sale.Status = entity.SaleStatusCompleted
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductName:  s.ProductName,
		Amount:       s.Amount,
		PaymentType:  s.PaymentType,
		CustomerName: s.CustomerName,
		Status:       s.Status,
		Date:         s.Date,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
