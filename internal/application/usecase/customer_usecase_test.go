package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/application/usecase"
	"github.com/tu-usuario/negocio-api/internal/domain"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
)

// fakeCustomerRepo guarda clientes en memoria respetando el filtro por dueño.
type fakeCustomerRepo struct {
	items map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Customer, error) {
	c, ok := f.items[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) ListByUser(_ context.Context, userID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.items {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) ListByUserAndStatus(_ context.Context, userID, status string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.items {
		if c.UserID == userID && c.Status == status {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cur, ok := f.items[c.ID]
	if !ok || cur.UserID != c.UserID {
		return domain.ErrNotFound
	}
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id, userID string) error {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func createReq() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:           "Doña Rosa",
		PackageWorth:   decPtr("125.50"),
		Quantity:       intPtr(3),
		PaymentDueDate: time.Now().Add(72 * time.Hour),
	}
}

func TestCustomerCreate_DefaultsOverdue(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	resp, err := uc.Create(context.Background(), "u1", createReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.CustomerStatusOverdue, resp.Status,
		"sin status explícito el cliente nace como overdue")
	assert.True(t, resp.PackageWorth.Equal(decimal.RequireFromString("125.50")))
}

// "Owed" es un sinónimo aceptado en escritura que siempre se guarda como overdue.
func TestCustomerCreate_OwedSePliegaAOverdue(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	req := createReq()
	req.Status = "Owed"
	resp, err := uc.Create(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusOverdue, resp.Status)

	list, err := uc.ListOverdue(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1, "el cliente con status Owed debe aparecer en overdue")
}

func TestCustomerCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Create(context.Background(), "u1", dto.CreateCustomerRequest{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "package_worth")
	assert.Contains(t, verr.Fields, "quantity")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_StatusDesconocidoRechazado(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	req := createReq()
	req.Status = "pendiente"
	_, err := uc.Create(context.Background(), "u1", req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

// Un id existente pero de otro dueño se comporta como inexistente.
func TestCustomer_AislamientoEntreUsuarios(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	created, err := uc.Create(context.Background(), "u1", createReq())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "Intruso"
	_, err = uc.Update(context.Background(), "u2", created.ID, dto.UpdateCustomerRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El dueño real sigue viendo su cliente intacto.
	got, err := uc.GetByID(context.Background(), "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doña Rosa", got.Name)
}

func TestCustomerUpdate_Parcial(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	created, err := uc.Create(context.Background(), "u1", createReq())
	require.NoError(t, err)

	status := "Paid"
	updated, err := uc.Update(context.Background(), "u1", created.ID, dto.UpdateCustomerRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.CustomerStatusPaid, updated.Status)
	assert.Equal(t, created.Name, updated.Name, "los campos no enviados no cambian")
	assert.True(t, updated.PackageWorth.Equal(created.PackageWorth))
}

func TestCustomerUpdate_RechazaNegativos(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	created, err := uc.Create(context.Background(), "u1", createReq())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateCustomerRequest{
		PackageWorth: decPtr("-1"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "package_worth")
}
