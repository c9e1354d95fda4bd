// Package reports contiene los casos de uso de exportación e importación del
// libro de stock: informes de salidas (xlsx y PDF), catálogo de productos en
// xlsx y la importación masiva de productos desde una hoja de cálculo.
//
// La exportación solo lee snapshots; la importación nunca toca las
// colecciones directamente, cada fila entra por el motor del libro como un
// alta de producto más, en orden de archivo.
package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/application/ledger"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
)

// UseCase casos de uso de informes e importación.
type UseCase struct {
	engine      *ledger.Engine
	products    repository.ProductRepository
	exits       repository.ExitRepository
	spreadsheet Spreadsheet
	pdf         ExitsPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	engine *ledger.Engine,
	products repository.ProductRepository,
	exits repository.ExitRepository,
	spreadsheet Spreadsheet,
	pdf ExitsPDFGenerator,
) *UseCase {
	return &UseCase{
		engine:      engine,
		products:    products,
		exits:       exits,
		spreadsheet: spreadsheet,
		pdf:         pdf,
	}
}

// ExportExitsXLSX genera el libro xlsx de salidas visibles para el
// departamento y devuelve los bytes junto al nombre de archivo sugerido.
func (uc *UseCase) ExportExitsXLSX(dept entity.Department) ([]byte, string, error) {
	rows, _, err := uc.exitRows(dept)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.spreadsheet.ExportExits(rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar salidas: %w", err)
	}
	name := fmt.Sprintf("sorties_stock_%s_%s.xlsx", dept.ID, time.Now().Format("2006-01-02"))
	return data, name, nil
}

// ExportExitsPDF genera el informe de salidas en PDF.
func (uc *UseCase) ExportExitsPDF(ctx context.Context, dept entity.Department) ([]byte, string, error) {
	rows, total, err := uc.exitRows(dept)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateExitsReport(ctx, dept, rows, total)
	if err != nil {
		return nil, "", fmt.Errorf("informe PDF de salidas: %w", err)
	}
	name := fmt.Sprintf("sorties_stock_%s_%s.pdf", dept.ID, time.Now().Format("2006-01-02"))
	return data, name, nil
}

// ExportProductsXLSX genera el libro xlsx del catálogo completo.
func (uc *UseCase) ExportProductsXLSX() ([]byte, string, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, "", fmt.Errorf("exportar productos: %w", err)
	}
	data, err := uc.spreadsheet.ExportProducts(products)
	if err != nil {
		return nil, "", fmt.Errorf("exportar productos: %w", err)
	}
	name := fmt.Sprintf("produits_%s.xlsx", time.Now().Format("2006-01-02"))
	return data, name, nil
}

// ImportProducts parsea el libro recibido y da de alta cada fila a través del
// motor, en orden de archivo. Las filas sin nombre ya vienen descartadas por
// el adaptador; un alta fallida aborta la importación con el error original.
func (uc *UseCase) ImportProducts(r io.Reader) (*dto.ImportSummary, error) {
	rows, skipped, err := uc.spreadsheet.ParseProducts(r)
	if err != nil {
		return nil, fmt.Errorf("importar productos: %w", err)
	}
	summary := &dto.ImportSummary{Skipped: skipped}
	for _, row := range rows {
		created, err := uc.engine.AddProduct(dto.CreateProductRequest{
			Name:        row.Name,
			Description: row.Description,
			Stock:       row.Stock,
			MinStock:    row.MinStock,
			MaxStock:    row.MaxStock,
			Price:       row.Price,
			Status:      row.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("importar producto %q: %w", row.Name, err)
		}
		summary.Imported++
		summary.Products = append(summary.Products, *created)
	}
	return summary, nil
}

// exitRows arma las filas valorizadas del informe de salidas y su total.
func (uc *UseCase) exitRows(dept entity.Department) ([]ExitReportRow, decimal.Decimal, error) {
	var (
		exits []*entity.StockExit
		err   error
	)
	if dept.CanViewAll {
		exits, err = uc.exits.List()
	} else {
		exits, err = uc.exits.ListByDepartment(dept.ID)
	}
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("informe de salidas: %w", err)
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("informe de salidas: %w", err)
	}
	priceByID := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	rows := make([]ExitReportRow, 0, len(exits))
	total := decimal.Zero
	for _, ex := range exits {
		price := priceByID[ex.ProductID] // cero para referencias huérfanas
		value := price.Mul(decimal.NewFromInt(int64(ex.Quantity)))
		total = total.Add(value)
		rows = append(rows, ExitReportRow{
			Date:        ex.Date,
			ProductName: ex.ProductName,
			Quantity:    ex.Quantity,
			UnitPrice:   price,
			Value:       value,
			Department:  ex.Department,
			Reason:      ex.Reason,
			User:        ex.User,
		})
	}
	return rows, total, nil
}
