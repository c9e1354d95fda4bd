// Package spreadsheet implementa el puerto reports.Spreadsheet con Excelize.
// Las columnas usan los encabezados en francés del tablero original; el
// contrato es ese juego de columnas, no la fidelidad de formato del archivo.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/magasin-tech/stock-atelier/internal/application/reports"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
)

// Defaults de importación para celdas ausentes o no parseables.
const (
	defaultMinStock = 5
	defaultMaxStock = 100
)

const (
	exitsSheetName    = "Sorties de Stock"
	productsSheetName = "Produits"
)

// Encabezados del informe de salidas (mismo orden que el tablero original).
var exitHeaders = []string{
	"Date", "Produit", "Quantité", "Prix unitaire (TND)", "Valeur sortie (TND)",
	"Département", "Motif", "Utilisateur",
}

// Encabezados del catálogo de productos.
var productHeaders = []string{
	"Nom du produit", "Description", "Stock", "Stock minimum", "Stock maximum",
	"Prix (TND)", "Statut",
}

// Etiquetas de estado en francés para exportación.
var statusLabels = map[string]string{
	entity.StatusOptimal:  "Stock optimal",
	entity.StatusCritical: "Stock critique",
	entity.StatusOnOrder:  "En commande",
}

var _ reports.Spreadsheet = (*Codec)(nil)

// Codec adaptador xlsx de importación/exportación.
type Codec struct{}

// NewCodec construye el adaptador.
func NewCodec() *Codec { return &Codec{} }

// ExportExits serializa el informe de salidas a un libro xlsx.
func (c *Codec) ExportExits(rows []reports.ExitReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exitsSheetName)

	if err := writeHeader(f, exitsSheetName, exitHeaders); err != nil {
		return nil, err
	}
	for i, r := range rows {
		user := r.User
		if user == "" {
			user = "Non renseigné"
		}
		values := []interface{}{
			r.Date.Format("02/01/2006"),
			r.ProductName,
			r.Quantity,
			r.UnitPrice.StringFixed(2),
			r.Value.StringFixed(2),
			r.Department,
			r.Reason,
			user,
		}
		if err := writeRow(f, exitsSheetName, i+2, values); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ExportProducts serializa el catálogo a un libro xlsx.
func (c *Codec) ExportProducts(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), productsSheetName)

	if err := writeHeader(f, productsSheetName, productHeaders); err != nil {
		return nil, err
	}
	for i, p := range products {
		label, ok := statusLabels[p.Status]
		if !ok {
			label = p.Status
		}
		values := []interface{}{
			p.Name,
			p.Description,
			p.Stock,
			p.MinStock,
			p.MaxStock,
			p.Price.StringFixed(2),
			label,
		}
		if err := writeRow(f, productsSheetName, i+2, values); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ParseProducts lee la primera hoja del libro. La primera fila es el
// encabezado; cada celda ausente o no parseable cae a su default y una fila
// solo se descarta cuando el nombre queda vacío tras los defaults.
func (c *Codec) ParseProducts(r io.Reader) ([]reports.ProductRow, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, 0, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	cols := indexHeaders(rows[0])
	var out []reports.ProductRow
	skipped := 0
	for _, raw := range rows[1:] {
		row := parseProductRow(raw, cols)
		if row.Name == "" {
			skipped++
			continue
		}
		out = append(out, row)
	}
	return out, skipped, nil
}

// indexHeaders mapea encabezado normalizado → índice de columna.
func indexHeaders(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseProductRow(raw []string, cols map[string]int) reports.ProductRow {
	return reports.ProductRow{
		Name:        cellString(raw, cols, "nom du produit"),
		Description: cellString(raw, cols, "description"),
		Stock:       cellInt(raw, cols, "stock", 0),
		MinStock:    cellInt(raw, cols, "stock minimum", defaultMinStock),
		MaxStock:    cellInt(raw, cols, "stock maximum", defaultMaxStock),
		Price:       cellPrice(raw, cols, "prix (tnd)", "prix"),
		Status:      cellStatus(raw, cols, "statut"),
	}
}

func cellString(raw []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(raw) {
		return ""
	}
	return strings.TrimSpace(raw[i])
}

func cellInt(raw []string, cols map[string]int, key string, def int) int {
	s := cellString(raw, cols, key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// cellPrice intenta las claves en orden ("Prix (TND)" o "Prix" a secas).
func cellPrice(raw []string, cols map[string]int, keys ...string) decimal.Decimal {
	for _, key := range keys {
		s := cellString(raw, cols, key)
		if s == "" {
			continue
		}
		s = strings.ReplaceAll(s, ",", ".")
		if d, err := decimal.NewFromString(s); err == nil && !d.LessThan(decimal.Zero) {
			return d
		}
	}
	return decimal.Zero
}

// cellStatus acepta la etiqueta francesa o el nombre interno; cualquier otra
// cosa cae al default optimal.
func cellStatus(raw []string, cols map[string]int, key string) string {
	s := cellString(raw, cols, key)
	for internal, label := range statusLabels {
		if strings.EqualFold(s, label) || strings.EqualFold(s, internal) {
			return internal
		}
	}
	return entity.StatusOptimal
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	return writeRow(f, sheet, 1, values)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("celda (%d,%d): %w", i+1, row, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("escribir celda %s: %w", cell, err)
		}
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
