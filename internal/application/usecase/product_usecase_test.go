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

// fakeProductRepo guarda productos en memoria respetando el filtro por dueño.
type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListByUser(_ context.Context, userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.items {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cur, ok := f.items[p.ID]
	if !ok || cur.UserID != p.UserID {
		return domain.ErrNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id, userID string) error {
	cur, ok := f.items[id]
	if !ok || cur.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func productReq() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Arroz 1kg",
		StockLevel:   intPtr(10),
		ReorderLevel: intPtr(5),
		UnitPrice:    decPtr("3.20"),
		Category:     "Granos",
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(context.Background(), "u1", productReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 10, resp.StockLevel)
	assert.Equal(t, 5, resp.ReorderLevel)
}

// Sin unit_price el alta falla con detalle por campo y no persiste nada.
func TestProductCreate_SinPrecioNoPersiste(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	req := productReq()
	req.UnitPrice = nil
	_, err := uc.Create(context.Background(), "u1", req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "unit_price")
	assert.Empty(t, repo.items, "una alta inválida no debe dejar rastro")
}

// stock_level es requerido aun cuando cero es un valor válido: el puntero
// distingue ausente de cero.
func TestProductCreate_StockCeroEsValido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	req := productReq()
	req.StockLevel = intPtr(0)
	resp, err := uc.Create(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockLevel)

	req.StockLevel = nil
	_, err = uc.Create(context.Background(), "u1", req)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "stock_level")
}

func TestProduct_AislamientoEntreUsuarios(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(context.Background(), "u1", productReq())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Estados derivados del inventario en los bordes exactos.
func TestProduct_EstadosDerivados(t *testing.T) {
	now := time.Now()

	agotado := &entity.Product{StockLevel: 0, ReorderLevel: 5}
	assert.True(t, agotado.IsOutOfStock())
	assert.False(t, agotado.IsLowStock(), "agotado no cuenta como bajo-stock")

	bajo := &entity.Product{StockLevel: 4, ReorderLevel: 5}
	assert.True(t, bajo.IsLowStock())
	assert.False(t, bajo.IsOutOfStock())

	justo := &entity.Product{StockLevel: 5, ReorderLevel: 5}
	assert.False(t, justo.IsLowStock(), "stock igual al punto de reorden no es bajo-stock")

	vencido := &entity.Product{ExpiryDate: now.Add(-time.Hour)}
	assert.True(t, vencido.IsExpired(now))

	sinFecha := &entity.Product{}
	assert.False(t, sinFecha.IsExpired(now), "sin fecha de vencimiento nunca vence")
}

func TestProductUpdate_RechazaPrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(context.Background(), "u1", productReq())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "u1", created.ID, dto.UpdateProductRequest{
		UnitPrice: decPtr("-0.01"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "unit_price")
}
