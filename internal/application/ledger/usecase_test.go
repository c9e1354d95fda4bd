package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/application/ledger"
	"github.com/magasin-tech/stock-atelier/internal/domain"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestEngine(t *testing.T) (*ledger.Engine, *memory.ProductRepo) {
	t.Helper()
	products := memory.NewProductRepository()
	entries := memory.NewEntryRepository()
	exits := memory.NewExitRepository()
	return ledger.NewEngine(products, entries, exits), products
}

// addProduct da de alta un producto con stock y mínimo dados.
func addProduct(t *testing.T, e *ledger.Engine, name string, stock, minStock int) *dto.ProductResponse {
	t.Helper()
	p, err := e.AddProduct(dto.CreateProductRequest{
		Name:     name,
		Stock:    stock,
		MinStock: minStock,
		MaxStock: 100,
		Price:    decimal.RequireFromString("7.50"),
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func currentStock(t *testing.T, e *ledger.Engine, id string) (int, string) {
	t.Helper()
	p, err := e.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock, p.Status
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y estado derivado
// ──────────────────────────────────────────────────────────────────────────────

// El alta deriva el estado: stock <= mínimo produce critical, el resto optimal.
func TestAddProduct_DerivaEstado(t *testing.T) {
	e, _ := newTestEngine(t)

	critico := addProduct(t, e, "pince", 3, 10)
	assert.Equal(t, entity.StatusCritical, critico.Status)

	optimo := addProduct(t, e, "lampe", 6, 2)
	assert.Equal(t, entity.StatusOptimal, optimo.Status)
}

// Un on_order manual en el alta se respeta hasta la próxima mutación de stock.
func TestAddProduct_RespetaOnOrderManual(t *testing.T) {
	e, _ := newTestEngine(t)

	p, err := e.AddProduct(dto.CreateProductRequest{
		Name: "cable", Stock: 50, MinStock: 5, MaxStock: 100,
		Price:  decimal.Zero,
		Status: entity.StatusOnOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnOrder, p.Status)

	// Una salida recalcula y on_order desaparece.
	_, err = e.RecordExit("technique", dto.RecordExitRequest{
		ProductID: p.ID, Quantity: 10, Reason: "Test qualité",
	})
	require.NoError(t, err)
	_, status := currentStock(t, e, p.ID)
	assert.Equal(t, entity.StatusOptimal, status)
}

func TestAddProduct_NombreVacioRechazado(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.AddProduct(dto.CreateProductRequest{Name: "", Stock: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddProduct_EstadoDesconocidoRechazado(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.AddProduct(dto.CreateProductRequest{Name: "pince", Stock: 1, Status: "agotado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un estado explícito en el alta se conserva aunque no coincida con la
// derivación (los defaults de importación dependen de esto: una fila con solo
// el nombre entra como {stock:0, min:5, status:optimal} y queda optimal).
// La siguiente mutación de stock sí recalcula.
func TestAddProduct_ConservaEstadoExplicito(t *testing.T) {
	e, _ := newTestEngine(t)

	p, err := e.AddProduct(dto.CreateProductRequest{
		Name: "Vis M6", Stock: 0, MinStock: 5, MaxStock: 100,
		Price:  decimal.Zero,
		Status: entity.StatusOptimal,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOptimal, p.Status, "el estado provisto no debe re-derivarse en el alta")

	// Una entrada recibida muta el stock y dispara el recálculo.
	_, err = e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 2, Status: entity.EntryStatusReceived,
	})
	require.NoError(t, err)

	stock, status := currentStock(t, e, p.ID)
	assert.Equal(t, 2, stock)
	assert.Equal(t, entity.StatusCritical, status, "2 <= 5: la mutación recalcula")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo del libro (entrada recibida, salidas, rechazo)
// ──────────────────────────────────────────────────────────────────────────────

// Producto {stock:10, min:5}: entrada recibida de 40 → 50 optimal; salida de
// 48 → 2 critical; salida de 10 con stock 2 → rechazada sin efecto.
func TestLedger_EscenarioEntradaSalidas(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "pince", 10, 5)

	entry, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 40, Status: entity.EntryStatusReceived,
		Supplier: "Monastir",
	})
	require.NoError(t, err)
	assert.True(t, entry.Applied, "una entrada received al crearla debe quedar acreditada")

	stock, status := currentStock(t, e, p.ID)
	assert.Equal(t, 50, stock)
	assert.Equal(t, entity.StatusOptimal, status)

	_, err = e.RecordExit("production", dto.RecordExitRequest{
		ProductID: p.ID, Quantity: 48, Reason: "Réparation équipement",
	})
	require.NoError(t, err)

	stock, status = currentStock(t, e, p.ID)
	assert.Equal(t, 2, stock)
	assert.Equal(t, entity.StatusCritical, status, "2 <= 5 debe ser critical")

	_, err = e.RecordExit("production", dto.RecordExitRequest{
		ProductID: p.ID, Quantity: 10, Reason: "Autre",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stock, _ = currentStock(t, e, p.ID)
	assert.Equal(t, 2, stock, "una salida rechazada no debe tocar el stock")
}

// Las entradas pending y cancelled se registran pero no tocan el stock.
func TestRecordEntry_PendingYCancelledSonInertes(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "lampe", 6, 2)

	en, err := e.RecordEntry("qualite", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryStatusPending, en.Status, "el estado por defecto es pending")
	assert.False(t, en.Applied)

	_, err = e.RecordEntry("qualite", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 15, Status: entity.EntryStatusCancelled,
	})
	require.NoError(t, err)

	stock, _ := currentStock(t, e, p.ID)
	assert.Equal(t, 6, stock)
}

// La entrada copia los umbrales del producto como min/max de pedido.
func TestRecordEntry_CopiaUmbralesDelProducto(t *testing.T) {
	e, _ := newTestEngine(t)
	p, err := e.AddProduct(dto.CreateProductRequest{
		Name: "pince", Stock: 3, MinStock: 10, MaxStock: 50,
		Price: decimal.Zero,
	})
	require.NoError(t, err)

	en, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, en.MinCommand)
	assert.Equal(t, 50, en.MaxCommand)
	assert.Equal(t, "pince", en.ProductName)
}

func TestRecordEntry_CantidadInvalida(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "pince", 3, 1)

	_, err := e.RecordEntry("technique", dto.RecordEntryRequest{ProductID: p.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.RecordEntry("technique", dto.RecordEntryRequest{ProductID: p.ID, Quantity: -4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordEntry_FechaInvalida(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "pince", 3, 1)

	_, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 1, Date: "19/08/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// historicoFallido simula una colección de entradas que rechaza todo append.
type historicoFallido struct {
	*memory.EntryRepo
}

func (historicoFallido) Create(*entity.StockEntry) error { return domain.ErrConflict }

// Si el append del histórico falla, la acreditación no debe haberse aplicado:
// primero la entrada, después el stock.
func TestRecordEntry_AppendFallidoNoTocaStock(t *testing.T) {
	products := memory.NewProductRepository()
	e := ledger.NewEngine(products, historicoFallido{memory.NewEntryRepository()}, memory.NewExitRepository())
	p := addProduct(t, e, "pince", 10, 5)

	_, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 40, Status: entity.EntryStatusReceived,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	stock, _ := currentStock(t, e, p.ID)
	assert.Equal(t, 10, stock, "sin entrada registrada no debe haber acreditación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado de entrada (acreditación at-most-once)
// ──────────────────────────────────────────────────────────────────────────────

// pending → received acredita exactamente una vez; la entrada queda terminal.
func TestUpdateEntryStatus_AcreditaUnaSolaVez(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "lampe", 6, 2)

	en, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 4,
	})
	require.NoError(t, err)

	out, err := e.UpdateEntryStatus(en.ID, entity.EntryStatusReceived)
	require.NoError(t, err)
	assert.True(t, out.Applied)

	stock, _ := currentStock(t, e, p.ID)
	assert.Equal(t, 10, stock)

	// received es terminal: otra transición no debe acreditar de nuevo.
	_, err = e.UpdateEntryStatus(en.ID, entity.EntryStatusReceived)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stock, _ = currentStock(t, e, p.ID)
	assert.Equal(t, 10, stock, "no debe haber doble acreditación")
}

// pending → cancelled es terminal y no toca el stock.
func TestUpdateEntryStatus_CancelledTerminal(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "lampe", 6, 2)

	en, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: p.ID, Quantity: 4,
	})
	require.NoError(t, err)

	_, err = e.UpdateEntryStatus(en.ID, entity.EntryStatusCancelled)
	require.NoError(t, err)

	stock, _ := currentStock(t, e, p.ID)
	assert.Equal(t, 6, stock)

	_, err = e.UpdateEntryStatus(en.ID, entity.EntryStatusReceived)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateEntryStatus_EntradaInexistente(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.UpdateEntryStatus("no-existe", entity.EntryStatusReceived)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateEntryStatus_EstadoInvalido(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.UpdateEntryStatus("cualquiera", entity.EntryStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Referencias huérfanas
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada received hacia un producto inexistente se guarda sin efecto.
func TestRecordEntry_ReferenciaHuerfanaTolerada(t *testing.T) {
	e, _ := newTestEngine(t)

	en, err := e.RecordEntry("technique", dto.RecordEntryRequest{
		ProductID: "fantasma", Quantity: 40, Status: entity.EntryStatusReceived,
	})
	require.NoError(t, err)
	assert.False(t, en.Applied, "sin producto no hay acreditación")
	assert.Empty(t, en.ProductName)
}

// Una salida hacia un producto inexistente se guarda sin rechazo ni efecto.
func TestRecordExit_ReferenciaHuerfanaTolerada(t *testing.T) {
	e, _ := newTestEngine(t)

	out, err := e.RecordExit("qualite", dto.RecordExitRequest{
		ProductID: "fantasma", Quantity: 99, Reason: "Formation",
	})
	require.NoError(t, err)
	assert.Equal(t, "qualite", out.Department)
}

// Borrar un producto no borra ni muta su histórico de movimientos.
func TestDeleteProduct_ConservaHistorico(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "pince", 10, 5)

	_, err := e.RecordEntry("technique", dto.RecordEntryRequest{ProductID: p.ID, Quantity: 5})
	require.NoError(t, err)
	_, err = e.RecordExit("technique", dto.RecordExitRequest{ProductID: p.ID, Quantity: 2, Reason: "Autre"})
	require.NoError(t, err)

	found, err := e.DeleteProduct(p.ID)
	require.NoError(t, err)
	assert.True(t, found)

	tech := entity.Department{ID: "technique", CanViewAll: true}
	entries, err := e.ListEntries(tech)
	require.NoError(t, err)
	assert.Equal(t, 1, entries.Total)
	assert.Equal(t, "pince", entries.Items[0].ProductName, "el snapshot de nombre sobrevive al borrado")

	exits, err := e.ListExits(tech)
	require.NoError(t, err)
	assert.Equal(t, 1, exits.Total)
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	e, _ := newTestEngine(t)
	found, err := e.DeleteProduct("no-existe")
	require.NoError(t, err)
	assert.False(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas: validación y piso en cero
// ──────────────────────────────────────────────────────────────────────────────

// Una salida por el total exacto deja el stock en 0 y el estado en critical.
func TestRecordExit_TotalExacto(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "cable", 20, 0)

	_, err := e.RecordExit("production", dto.RecordExitRequest{
		ProductID: p.ID, Quantity: 20, Reason: "Installation nouvelle",
	})
	require.NoError(t, err)

	stock, status := currentStock(t, e, p.ID)
	assert.Equal(t, 0, stock)
	assert.Equal(t, entity.StatusCritical, status, "0 <= 0 es critical")
}

func TestRecordExit_CantidadInvalida(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "cable", 20, 0)

	_, err := e.RecordExit("production", dto.RecordExitRequest{ProductID: p.ID, Quantity: 0, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El stock nunca queda negativo bajo ninguna secuencia de movimientos.
func TestLedger_StockNuncaNegativo(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "pince", 5, 2)

	for i := 0; i < 10; i++ {
		_, _ = e.RecordExit("production", dto.RecordExitRequest{
			ProductID: p.ID, Quantity: 3, Reason: "Autre",
		})
	}
	stock, _ := currentStock(t, e, p.ID)
	assert.GreaterOrEqual(t, stock, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de productos
// ──────────────────────────────────────────────────────────────────────────────

// La edición reemplaza los campos mutables, conserva la identidad y recalcula.
func TestEditProduct_ReemplazaYRecalcula(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "lampe", 6, 2)

	out, err := e.EditProduct(p.ID, dto.UpdateProductRequest{
		Name: "lampe bureau", Stock: 1, MinStock: 2, MaxStock: 10,
		Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, out.ID)
	assert.Equal(t, "lampe bureau", out.Name)
	assert.Equal(t, entity.StatusCritical, out.Status, "1 <= 2 debe recalcular a critical")
}

func TestEditProduct_Inexistente(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.EditProduct("no-existe", dto.UpdateProductRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por departamento en listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListExits_FiltraPorDepartamento(t *testing.T) {
	e, _ := newTestEngine(t)
	p := addProduct(t, e, "cable", 100, 0)

	_, err := e.RecordExit("qualite", dto.RecordExitRequest{ProductID: p.ID, Quantity: 5, Reason: "Autre"})
	require.NoError(t, err)
	_, err = e.RecordExit("production", dto.RecordExitRequest{ProductID: p.ID, Quantity: 7, Reason: "Autre"})
	require.NoError(t, err)

	soloQualite, err := e.ListExits(entity.Department{ID: "qualite"})
	require.NoError(t, err)
	assert.Equal(t, 1, soloQualite.Total)

	todo, err := e.ListExits(entity.Department{ID: "technique", CanViewAll: true})
	require.NoError(t, err)
	assert.Equal(t, 2, todo.Total)
}
