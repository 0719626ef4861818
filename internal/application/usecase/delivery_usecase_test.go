package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// fakeDeliveryRepo guarda entregas en memoria respetando el filtro por dueño.
type fakeDeliveryRepo struct {
	items map[string]*entity.Delivery
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{items: map[string]*entity.Delivery{}}
}

func (f *fakeDeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Delivery, error) {
	d, ok := f.items[id]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDeliveryRepo) ListByUser(_ context.Context, userID string) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range f.items {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) Update(_ context.Context, d *entity.Delivery) error {
	cur, ok := f.items[d.ID]
	if !ok || cur.UserID != d.UserID {
		return domain.ErrNotFound
	}
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) Delete(_ context.Context, id, userID string) error {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func deliveryReq() dto.CreateDeliveryRequest {
	return dto.CreateDeliveryRequest{
		Customer: "Doña Rosa",
		Package:  "Caja mediana",
		Date:     time.Now().Add(24 * time.Hour),
		Agent: dto.DeliveryAgentDTO{
			Name:  "Pedro",
			Type:  "Waybill",
			Phone: "555-0001",
		},
	}
}

func TestDeliveryCreate_DefaultsPending(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	resp, err := uc.Create(context.Background(), "u1", deliveryReq())
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryStatusPending, resp.Status)
	assert.Equal(t, entity.AgentTypeWaybill, resp.Agent.Type,
		"el tipo de agente se guarda normalizado en minúsculas")
}

func TestDeliveryCreate_AgenteInvalido(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	req := deliveryReq()
	req.Agent.Type = "dron"
	_, err := uc.Create(context.Background(), "u1", req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "agent.type")
}

// pending -> completed incrementa el contador de entregas del agente.
func TestDeliveryUpdate_CompletarIncrementaContador(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	created, err := uc.Create(context.Background(), "u1", deliveryReq())
	require.NoError(t, err)
	require.Equal(t, 0, created.Agent.CompletedCount)

	status := "completed"
	updated, err := uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryStatusCompleted, updated.Status)
	assert.Equal(t, 1, updated.Agent.CompletedCount)
}

// De completed no se sale: ni a pending ni a cancelled.
func TestDeliveryUpdate_CompletedEsTerminal(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	created, err := uc.Create(context.Background(), "u1", deliveryReq())
	require.NoError(t, err)

	status := "completed"
	_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &status})
	require.NoError(t, err)

	for _, next := range []string{"pending", "cancelled"} {
		next := next
		_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &next})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "completed -> %s debe rechazarse", next)
	}

	// Reenviar el mismo estado terminal no es una transición y se acepta.
	_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &status})
	assert.NoError(t, err)
}

func TestDeliveryUpdate_CancelledEsTerminal(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	created, err := uc.Create(context.Background(), "u1", deliveryReq())
	require.NoError(t, err)

	cancelled := "cancelled"
	updated, err := uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusCancelled, updated.Status)
	assert.Equal(t, 0, updated.Agent.CompletedCount,
		"cancelar no incrementa el contador del agente")

	completed := "completed"
	_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateDeliveryRequest{Status: &completed})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDelivery_AislamientoEntreUsuarios(t *testing.T) {
	uc := usecase.NewDeliveryUseCase(newFakeDeliveryRepo())

	created, err := uc.Create(context.Background(), "u1", deliveryReq())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	status := "completed"
	_, err = uc.Update(context.Background(), "u2", created.ID, dto.UpdateDeliveryRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
