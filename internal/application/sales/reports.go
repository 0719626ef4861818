package sales

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain/entity"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

const defaultTopLimit = 5

// Vistas de analítica.
const (
	ViewMonthly = "monthly"
	ViewYearly  = "yearly"
)

// ReportsUseCase reportes read-only de ventas. Cada reporte recalcula desde un
// escaneo completo de la colección; no hay caché, el costo es lineal por llamada.
type ReportsUseCase struct {
	repo repository.SaleRepository
}

// NewReportsUseCase construye el caso de uso de reportes.
func NewReportsUseCase(repo repository.SaleRepository) *ReportsUseCase {
	return &ReportsUseCase{repo: repo}
}

// Summary total vendido, partido por medio de pago, y conteos por estado.
// Todos los totales parten de 0 cuando no hay ventas.
func (uc *ReportsUseCase) Summary(ctx context.Context) (*dto.SalesSummaryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesSummaryResponse{
		TotalSales:  decimal.Zero,
		CashSales:   decimal.Zero,
		MobileSales: decimal.Zero,
	}
	for _, s := range list {
		out.TotalSales = out.TotalSales.Add(s.Amount)
		switch s.PaymentType {
		case entity.PaymentTypeCash:
			out.CashSales = out.CashSales.Add(s.Amount)
		case entity.PaymentTypeMobile:
			out.MobileSales = out.MobileSales.Add(s.Amount)
		}
		switch s.Status {
		case entity.SaleStatusCompleted:
			out.CompletedCount++
		case entity.SaleStatusPending:
			out.PendingCount++
		}
	}
	return out, nil
}

// Analytics agrupa el total vendido por mes calendario (vista monthly, índices
// 0-11) o por año calendario (vista yearly). Cualquier otro valor de view cae
// en monthly.
func (uc *ReportsUseCase) Analytics(ctx context.Context, view string) (*dto.SalesAnalyticsResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if view != ViewYearly {
		view = ViewMonthly
	}

	if view == ViewMonthly {
		monthly := make([]decimal.Decimal, 12)
		for i := range monthly {
			monthly[i] = decimal.Zero
		}
		for _, s := range list {
			monthly[int(s.Date.Month())-1] = monthly[int(s.Date.Month())-1].Add(s.Amount)
		}
		return &dto.SalesAnalyticsResponse{View: ViewMonthly, Monthly: monthly}, nil
	}

	byYear := map[int]decimal.Decimal{}
	for _, s := range list {
		year := s.Date.Year()
		byYear[year] = byYear[year].Add(s.Amount)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	yearly := make([]dto.YearTotal, 0, len(years))
	for _, y := range years {
		yearly = append(yearly, dto.YearTotal{Year: y, Total: byYear[y]})
	}
	return &dto.SalesAnalyticsResponse{View: ViewYearly, Yearly: yearly}, nil
}

// TopCustomers top 5 clientes por valor vendido, descendente.
func (uc *ReportsUseCase) TopCustomers(ctx context.Context) ([]dto.TopEntryResponse, error) {
	return uc.topBy(ctx, func(s *entity.Sale) string { return s.CustomerName })
}

// TopProducts top 5 productos por valor vendido, descendente.
func (uc *ReportsUseCase) TopProducts(ctx context.Context) ([]dto.TopEntryResponse, error) {
	return uc.topBy(ctx, func(s *entity.Sale) string { return s.ProductName })
}

func (uc *ReportsUseCase) topBy(ctx context.Context, key func(*entity.Sale) string) ([]dto.TopEntryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, s := range list {
		k := key(s)
		totals[k] = totals[k].Add(s.Amount)
	}
	entries := make([]dto.TopEntryResponse, 0, len(totals))
	for name, total := range totals {
		entries = append(entries, dto.TopEntryResponse{Name: name, Total: total})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})
	if len(entries) > defaultTopLimit {
		entries = entries[:defaultTopLimit]
	}
	return entries, nil
}

// PendingOrders ventas con estado pending.
func (uc *ReportsUseCase) PendingOrders(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0)
	for _, s := range list {
		if s.Status == entity.SaleStatusPending {
			out = append(out, toSaleResponse(s))
		}
	}
	return out, nil
}
