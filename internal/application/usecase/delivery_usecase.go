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

// DeliveryUseCase casos de uso CRUD para entregas, acotados al usuario dueño.
// Máquina de estados: pending -> completed, pending -> cancelled; no hay
// transiciones que salgan de completed ni de cancelled.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

func normalizeDeliveryStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.DeliveryStatusPending:
		return entity.DeliveryStatusPending
	case entity.DeliveryStatusCompleted:
		return entity.DeliveryStatusCompleted
	case entity.DeliveryStatusCancelled:
		return entity.DeliveryStatusCancelled
	default:
		return ""
	}
}

func validAgentType(t string) bool {
	switch t {
	case entity.AgentTypeWaybill, entity.AgentTypeLogistic, entity.AgentTypeOther:
		return true
	}
	return false
}

// Create crea una entrega del usuario indicado.
func (uc *DeliveryUseCase) Create(ctx context.Context, userID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	verr := &domain.ValidationError{}
	if in.Customer == "" {
		verr.Add("customer", "requerido")
	}
	if in.Package == "" {
		verr.Add("package", "requerido")
	}
	if in.Agent.Name == "" {
		verr.Add("agent.name", "requerido")
	}
	if !validAgentType(strings.ToLower(strings.TrimSpace(in.Agent.Type))) {
		verr.Add("agent.type", "debe ser waybill, logistic company u other")
	}
	status := normalizeDeliveryStatus(in.Status)
	if in.Status == "" {
		status = entity.DeliveryStatusPending
	} else if status == "" {
		verr.Add("status", "debe ser pending, completed o cancelled")
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now()
	delivery := &entity.Delivery{
		ID:       uuid.New().String(),
		UserID:   userID,
		Customer: in.Customer,
		Package:  in.Package,
		Date:     in.Date,
		Agent: entity.DeliveryAgent{
			Name:           in.Agent.Name,
			Type:           strings.ToLower(strings.TrimSpace(in.Agent.Type)),
			Phone:          in.Agent.Phone,
			CompletedCount: in.Agent.CompletedCount,
		},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

// GetByID obtiene una entrega del usuario. Un id de otro usuario es ErrNotFound.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, userID, id string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	return toDeliveryResponse(delivery), nil
}

// List lista las entregas del usuario.
func (uc *DeliveryUseCase) List(ctx context.Context, userID string) ([]*dto.DeliveryResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeliveryResponse(d))
	}
	return out, nil
}

// Update actualiza parcialmente una entrega del usuario, validando la
// transición de estado cuando se envía uno nuevo.
func (uc *DeliveryUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	delivery, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if in.Customer != nil {
		delivery.Customer = *in.Customer
	}
	if in.Package != nil {
		delivery.Package = *in.Package
	}
	if in.Date != nil {
		delivery.Date = *in.Date
	}
	if in.Agent != nil {
		if in.Agent.Name == "" {
			return nil, domain.NewValidationError("agent.name", "requerido")
		}
		agentType := strings.ToLower(strings.TrimSpace(in.Agent.Type))
		if !validAgentType(agentType) {
			return nil, domain.NewValidationError("agent.type", "debe ser waybill, logistic company u other")
		}
		delivery.Agent = entity.DeliveryAgent{
			Name:           in.Agent.Name,
			Type:           agentType,
			Phone:          in.Agent.Phone,
			CompletedCount: in.Agent.CompletedCount,
		}
	}
	if in.Status != nil {
		next := normalizeDeliveryStatus(*in.Status)
		if next == "" {
			return nil, domain.NewValidationError("status", "debe ser pending, completed o cancelled")
		}
		if next != delivery.Status && delivery.Status != entity.DeliveryStatusPending {
			return nil, domain.NewValidationError("status", "la entrega ya está "+delivery.Status)
		}
		if next == entity.DeliveryStatusCompleted && delivery.Status == entity.DeliveryStatusPending {
			delivery.Agent.CompletedCount++
		}
		delivery.Status = next
	}
	delivery.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

// Delete elimina una entrega del usuario.
func (uc *DeliveryUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, id, userID)
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:       d.ID,
		Customer: d.Customer,
		Package:  d.Package,
		Date:     d.Date,
		Agent: dto.DeliveryAgentDTO{
			Name:           d.Agent.Name,
			Type:           d.Agent.Type,
			Phone:          d.Agent.Phone,
			CompletedCount: d.Agent.CompletedCount,
		},
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
