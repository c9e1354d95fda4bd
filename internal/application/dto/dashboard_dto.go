package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del tablero para el departamento actual.
// EnteredQuantity/ExitedQuantity suman las cantidades de los movimientos
// visibles según CanViewAll; StockValue es Σ stock·precio del catálogo entero.
type DashboardSummaryDTO struct {
	TotalProducts     int                     `json:"total_products"`
	EnteredQuantity   int                     `json:"entered_quantity"`
	ExitedQuantity    int                     `json:"exited_quantity"`
	StockValue        decimal.Decimal         `json:"stock_value"`
	CriticalProducts  []CriticalProductDTO    `json:"critical_products"`
	ActiveDepartments []DepartmentActivityDTO `json:"active_departments"`
	RecentExits       []ExitResponse          `json:"recent_exits"`
}

// CriticalProductDTO producto en alerta de stock crítico (stock <= mínimo).
type CriticalProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// DepartmentActivityDTO volumen de salidas acumulado por departamento,
// ordenado de mayor a menor.
type DepartmentActivityDTO struct {
	Department string `json:"department"`
	Quantity   int    `json:"quantity"`
}
