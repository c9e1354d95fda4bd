package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/magasin-tech/stock-atelier/internal/application/reports"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/spreadsheet"
)

// buildWorkbook arma un libro xlsx en memoria a partir de filas de celdas.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, cells := range rows {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// Una fila con solo el nombre hereda todos los defaults de importación.
func TestParseProducts_SoloNombreAplicaDefaults(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Description", "Stock", "Stock minimum", "Stock maximum", "Prix (TND)", "Statut"},
		{"Vis M6"},
	})

	rows, skipped, err := codec.ParseProducts(r)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Vis M6", row.Name)
	assert.Equal(t, 0, row.Stock)
	assert.Equal(t, 5, row.MinStock)
	assert.Equal(t, 100, row.MaxStock)
	assert.True(t, row.Price.IsZero())
	assert.Equal(t, entity.StatusOptimal, row.Status)
}

// Solo las filas sin nombre se descartan; las demás se importan con defaults.
func TestParseProducts_DescartaSoloFilasSinNombre(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Stock"},
		{"", 12},
		{"pince", 3},
		{"   ", 9},
	})

	rows, skipped, err := codec.ParseProducts(r)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, rows, 1)
	assert.Equal(t, "pince", rows[0].Name)
	assert.Equal(t, 3, rows[0].Stock)
}

// Celdas no parseables (números negativos, texto, precio inválido) caen a
// sus defaults en vez de abortar la importación.
func TestParseProducts_CeldasInvalidasCaenADefaults(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Stock", "Stock minimum", "Prix (TND)", "Statut"},
		{"cable", "beaucoup", -4, "gratuit", "n'importe quoi"},
	})

	rows, _, err := codec.ParseProducts(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Stock)
	assert.Equal(t, 5, rows[0].MinStock)
	assert.True(t, rows[0].Price.IsZero())
	assert.Equal(t, entity.StatusOptimal, rows[0].Status)
}

// El precio acepta coma decimal y la columna corta "Prix".
func TestParseProducts_PrecioConComaYColumnaCorta(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Prix"},
		{"lampe", "12,50"},
	})

	rows, _, err := codec.ParseProducts(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, decimal.RequireFromString("12.50").Equal(rows[0].Price))
}

// El estado acepta la etiqueta francesa y el nombre interno indistintamente.
func TestParseProducts_EstadoFrancesOInterno(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Statut"},
		{"a", "Stock critique"},
		{"b", "on_order"},
		{"c", "EN COMMANDE"},
	})

	rows, _, err := codec.ParseProducts(r)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, entity.StatusCritical, rows[0].Status)
	assert.Equal(t, entity.StatusOnOrder, rows[1].Status)
	assert.Equal(t, entity.StatusOnOrder, rows[2].Status)
}

// Exportar el catálogo y volver a parsearlo conserva los valores.
func TestExportProducts_RoundTrip(t *testing.T) {
	codec := spreadsheet.NewCodec()
	products := []*entity.Product{
		{
			Name: "pince", Description: "pince multiprise",
			Stock: 3, MinStock: 10, MaxStock: 50,
			Price:  decimal.RequireFromString("15.50"),
			Status: entity.StatusCritical,
		},
		{
			Name: "lampe", Stock: 6, MinStock: 2, MaxStock: 20,
			Price:  decimal.RequireFromString("25.00"),
			Status: entity.StatusOptimal,
		},
	}

	data, err := codec.ExportProducts(products)
	require.NoError(t, err)

	rows, skipped, err := codec.ParseProducts(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, "pince", rows[0].Name)
	assert.Equal(t, "pince multiprise", rows[0].Description)
	assert.Equal(t, 3, rows[0].Stock)
	assert.Equal(t, 10, rows[0].MinStock)
	assert.Equal(t, 50, rows[0].MaxStock)
	assert.True(t, decimal.RequireFromString("15.50").Equal(rows[0].Price))
	assert.Equal(t, entity.StatusCritical, rows[0].Status, "la etiqueta francesa del export debe volver al nombre interno")
	assert.Equal(t, entity.StatusOptimal, rows[1].Status)
}

// El informe de salidas lleva los encabezados franceses, la fecha dd/mm/aaaa
// y el fallback "Non renseigné" de usuario.
func TestExportExits_ColumnasYFallbacks(t *testing.T) {
	codec := spreadsheet.NewCodec()
	date := time.Date(2025, time.August, 19, 0, 0, 0, 0, time.UTC)
	data, err := codec.ExportExits([]reports.ExitReportRow{
		{
			Date: date, ProductName: "pince", Quantity: 2,
			UnitPrice:  decimal.RequireFromString("15.50"),
			Value:      decimal.RequireFromString("31.00"),
			Department: "production", Reason: "Réparation équipement",
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Sorties de Stock", f.GetSheetName(0))

	rows, err := f.GetRows("Sorties de Stock")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Date", "Produit", "Quantité", "Prix unitaire (TND)", "Valeur sortie (TND)",
		"Département", "Motif", "Utilisateur",
	}, rows[0])
	assert.Equal(t, "19/08/2025", rows[1][0])
	assert.Equal(t, "31.00", rows[1][4])
	assert.Equal(t, "Non renseigné", rows[1][7], "usuario vacío debe caer al fallback")
}

// Un libro sin filas de datos importa cero productos sin error.
func TestParseProducts_LibroVacio(t *testing.T) {
	codec := spreadsheet.NewCodec()
	r := buildWorkbook(t, [][]interface{}{
		{"Nom du produit", "Stock"},
	})

	rows, skipped, err := codec.ParseProducts(r)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Empty(t, rows)
}
