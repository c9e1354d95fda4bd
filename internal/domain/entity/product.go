package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto. Un estado fijado por el que llama (alta, edición o
// importación) se conserva hasta la siguiente mutación de stock; el recálculo
// automático únicamente produce optimal o critical.
const (
	StatusOptimal  = "optimal"
	StatusCritical = "critical"
	StatusOnOrder  = "on_order"
)

// Product representa un artículo del taller. Stock es la cantidad actual
// (invariante: nunca negativa); MinStock/MaxStock son umbrales declarados.
type Product struct {
	ID          string
	Name        string
	Description string
	Stock       int
	MinStock    int
	MaxStock    int
	Price       decimal.Decimal // precio unitario en TND
	Status      string          // optimal, critical, on_order
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockValue devuelve el valor del stock actual (Stock * Price).
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ValidProductStatus indica si s es un estado de producto conocido.
func ValidProductStatus(s string) bool {
	return s == StatusOptimal || s == StatusCritical || s == StatusOnOrder
}
