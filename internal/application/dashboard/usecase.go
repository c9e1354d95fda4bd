// Package dashboard contiene el caso de uso del tablero de resumen: totales de
// catálogo y movimientos, valor del stock, alertas críticas y actividad por
// departamento.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
)

const recentExitsLimit = 5 // número de salidas en el widget de actividad reciente

// UseCase genera el resumen del tablero para un departamento.
//
// Fuente de datos: las tres colecciones del libro de stock (lectura de
// snapshots). Las cantidades de entradas/salidas se filtran según CanViewAll;
// el catálogo y sus alertas son globales, igual que el ranking de
// departamentos activos.
type UseCase struct {
	products repository.ProductRepository
	entries  repository.EntryRepository
	exits    repository.ExitRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	entries repository.EntryRepository,
	exits repository.ExitRepository,
) *UseCase {
	return &UseCase{products: products, entries: entries, exits: exits}
}

// GetSummary construye el DashboardSummaryDTO para el departamento indicado.
func (uc *UseCase) GetSummary(dept entity.Department) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", err)
	}

	var entries []*entity.StockEntry
	var exits []*entity.StockExit
	if dept.CanViewAll {
		entries, err = uc.entries.List()
	} else {
		entries, err = uc.entries.ListByDepartment(dept.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", err)
	}
	if dept.CanViewAll {
		exits, err = uc.exits.List()
	} else {
		exits, err = uc.exits.ListByDepartment(dept.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", err)
	}

	entered := 0
	for _, en := range entries {
		entered += en.Quantity
	}
	exited := 0
	for _, ex := range exits {
		exited += ex.Quantity
	}

	stockValue := decimal.Zero
	var critical []dto.CriticalProductDTO
	for _, p := range products {
		stockValue = stockValue.Add(p.StockValue())
		if p.Stock <= p.MinStock {
			critical = append(critical, dto.CriticalProductDTO{
				ID:       p.ID,
				Name:     p.Name,
				Stock:    p.Stock,
				MinStock: p.MinStock,
			})
		}
	}

	active, err := uc.departmentActivity()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     len(products),
		EnteredQuantity:   entered,
		ExitedQuantity:    exited,
		StockValue:        stockValue.Round(2),
		CriticalProducts:  critical,
		ActiveDepartments: active,
		RecentExits:       recentExits(exits),
	}, nil
}

// departmentActivity acumula el volumen de salidas por departamento sobre el
// histórico global y lo ordena de mayor a menor.
func (uc *UseCase) departmentActivity() ([]dto.DepartmentActivityDTO, error) {
	all, err := uc.exits.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad por departamento: %w", err)
	}
	acc := make(map[string]int)
	for _, ex := range all {
		acc[ex.Department] += ex.Quantity
	}
	out := make([]dto.DepartmentActivityDTO, 0, len(acc))
	for dept, qty := range acc {
		out = append(out, dto.DepartmentActivityDTO{Department: dept, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Department < out[j].Department
	})
	return out, nil
}

// recentExits devuelve las últimas salidas visibles, la más nueva primero.
func recentExits(exits []*entity.StockExit) []dto.ExitResponse {
	n := len(exits)
	limit := recentExitsLimit
	if n < limit {
		limit = n
	}
	out := make([]dto.ExitResponse, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		ex := exits[i]
		out = append(out, dto.ExitResponse{
			ID:          ex.ID,
			ProductID:   ex.ProductID,
			ProductName: ex.ProductName,
			Quantity:    ex.Quantity,
			Department:  ex.Department,
			Reason:      ex.Reason,
			User:        ex.User,
			Date:        ex.Date,
			CreatedAt:   ex.CreatedAt,
		})
	}
	return out
}
