// Package pdf implementa la generación del informe de salidas de stock en PDF
// con Maroto v2: encabezado con departamento y fecha, tabla de salidas
// valorizadas y fila de total.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/application/reports"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.ExitsPDFGenerator = (*MarotoExitsReport)(nil)

// MarotoExitsReport implementa reports.ExitsPDFGenerator usando Maroto v2.
type MarotoExitsReport struct{}

// NewMarotoExitsReport construye el generador.
func NewMarotoExitsReport() *MarotoExitsReport { return &MarotoExitsReport{} }

// GenerateExitsReport genera el PDF y devuelve sus bytes.
func (g *MarotoExitsReport) GenerateExitsReport(
	_ context.Context,
	dept entity.Department,
	rows []reports.ExitReportRow,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sorties de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(dept))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(rows), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y departamento (der).
func headerRow(dept entity.Department) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Sorties de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(dept.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de salidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Produit", 3, align.Left),
		h("Qté", 1, align.Center),
		h("Valeur (TND)", 2, align.Right),
		h("Département", 2, align.Left),
		h("Motif", 2, align.Left),
	)
}

// tableDetailRows: una fila por salida.
func tableDetailRows(rows []reports.ExitReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.Value.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.Department,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.Reason,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalRow: recuento de salidas y valor total.
func totalRow(count int, total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d sortie(s)", count),
			props.Text{Size: 9, Color: colorGray, Top: 2, Left: 1},
		)),
		col.New(6).Add(text.New(
			"TOTAL: "+total.StringFixed(2)+" TND",
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1, Right: 1},
		)),
	)
}
