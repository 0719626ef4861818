// Package analytics contiene los reportes agregados del dashboard: resumen
// financiero y alertas de inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/internal/domain/repository"
)

// DashboardUseCase calcula el resumen financiero: utilidad = ventas - gastos.
//
// Las ventas son globales y los gastos van acotados al usuario. Ambas sumas
// parten de 0 cuando no hay documentos.
type DashboardUseCase struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// GetSummary construye el DashboardSummaryDTO para el usuario indicado.
// Las dos consultas van en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type totalResult struct {
		total decimal.Decimal
		err   error
	}

	salesCh := make(chan totalResult, 1)
	expensesCh := make(chan totalResult, 1)

	go func() {
		sales, err := uc.saleRepo.List(ctx)
		total := decimal.Zero
		for _, s := range sales {
			total = total.Add(s.Amount)
		}
		salesCh <- totalResult{total, err}
	}()
	go func() {
		expenses, err := uc.expenseRepo.ListByUser(ctx, userID)
		total := decimal.Zero
		for _, e := range expenses {
			total = total.Add(e.Amount)
		}
		expensesCh <- totalResult{total, err}
	}()

	sales := <-salesCh
	expenses := <-expensesCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total de ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: total de gastos: %w", expenses.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalSales:    sales.total,
		TotalExpenses: expenses.total,
		Profit:        sales.total.Sub(expenses.total),
	}, nil
}
