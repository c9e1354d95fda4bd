package reports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
)

// ExitReportRow fila del informe de salidas, ya valorizada: el precio unitario
// proviene del producto referenciado (0 si la referencia quedó huérfana).
type ExitReportRow struct {
	Date        time.Time
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Value       decimal.Decimal
	Department  string
	Reason      string
	User        string
}

// ProductRow fila de producto parseada de una hoja de cálculo, con los
// defaults ya aplicados (stock 0, mínimo 5, máximo 100, precio 0, optimal).
type ProductRow struct {
	Name        string
	Description string
	Stock       int
	MinStock    int
	MaxStock    int
	Price       decimal.Decimal
	Status      string
}

// Spreadsheet puerto del adaptador de hojas de cálculo (xlsx).
type Spreadsheet interface {
	// ExportExits serializa el informe de salidas a un libro xlsx.
	ExportExits(rows []ExitReportRow) ([]byte, error)
	// ExportProducts serializa el catálogo a un libro xlsx.
	ExportProducts(products []*entity.Product) ([]byte, error)
	// ParseProducts lee un libro xlsx y devuelve las filas en orden de
	// archivo; skipped cuenta las descartadas por nombre vacío.
	ParseProducts(r io.Reader) (rows []ProductRow, skipped int, err error)
}

// ExitsPDFGenerator puerto del generador del informe de salidas en PDF.
type ExitsPDFGenerator interface {
	GenerateExitsReport(ctx context.Context, dept entity.Department, rows []ExitReportRow, total decimal.Decimal) ([]byte, error)
}
