// Package ledger implementa el motor del libro de stock: es el único
// propietario de las colecciones de productos, entradas y salidas, y el único
// punto con derecho a mutarlas. Toda mutación de stock termina con un
// recálculo de estado del producto afectado.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/domain"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
	"github.com/magasin-tech/stock-atelier/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Engine motor del libro de stock. El mutex serializa las mutaciones para que
// el append del movimiento, el ajuste de stock y el recálculo de estado sean
// atómicos frente a los lectores (equivale al bloqueo de fila de un motor SQL).
type Engine struct {
	mu       sync.Mutex
	products repository.ProductRepository
	entries  repository.EntryRepository
	exits    repository.ExitRepository
}

// NewEngine construye el motor sobre las colecciones dadas.
func NewEngine(
	products repository.ProductRepository,
	entries repository.EntryRepository,
	exits repository.ExitRepository,
) *Engine {
	return &Engine{products: products, entries: entries, exits: exits}
}

// ── Productos ────────────────────────────────────────────────────────────────

// AddProduct asigna identidad nueva y lo inserta. Un estado provisto por el
// que llama se conserva tal cual (la importación cuenta con eso para sus
// defaults); solo se deriva cuando viene vacío. El recálculo automático corre
// recién en la siguiente mutación de stock.
func (e *Engine) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !entity.ValidProductStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		Price:       in.Price,
		Status:      resolveStatus(in.Status, in.Stock, in.MinStock),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.products.Create(product); err != nil {
		metrics.LedgerOperations.WithLabelValues("add_product", "error").Inc()
		return nil, err
	}
	metrics.LedgerOperations.WithLabelValues("add_product", "ok").Inc()
	return toProductResponse(product), nil
}

// EditProduct reemplaza todos los campos mutables conservando la identidad.
// Devuelve ErrNotFound si el producto no existe.
func (e *Engine) EditProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Status != "" && !entity.ValidProductStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Stock = in.Stock
	product.MinStock = in.MinStock
	product.MaxStock = in.MaxStock
	product.Price = in.Price
	product.Status = resolveStatus(in.Status, in.Stock, in.MinStock)
	product.UpdatedAt = time.Now()
	if err := e.products.Update(product); err != nil {
		return nil, err
	}
	metrics.LedgerOperations.WithLabelValues("edit_product", "ok").Inc()
	return toProductResponse(product), nil
}

// DeleteProduct elimina por identidad. Sin cascada: el histórico de entradas y
// salidas que referencian al producto se conserva con sus snapshots de nombre.
func (e *Engine) DeleteProduct(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.products.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if err := e.products.Delete(id); err != nil {
		return false, err
	}
	metrics.LedgerOperations.WithLabelValues("delete_product", "ok").Inc()
	return true, nil
}

// GetProduct devuelve un producto por ID, o nil si no existe.
func (e *Engine) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := e.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo completo en orden de inserción.
func (e *Engine) ListProducts() (*dto.ProductListResponse, error) {
	list, err := e.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// ── Entradas ─────────────────────────────────────────────────────────────────

// RecordEntry agrega la entrada al histórico incondicionalmente y, solo si su
// estado es received al crearla, acredita la cantidad al stock del producto.
// Un product_id que no corresponde a ningún producto se tolera en silencio:
// el registro se guarda y el stock no cambia.
func (e *Engine) RecordEntry(department string, in dto.RecordEntryRequest) (*dto.EntryResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EntryStatusPending
	}
	if !entity.ValidEntryStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.StockEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Supplier:   in.Supplier,
		Quantity:   in.Quantity,
		Date:       date,
		Status:     status,
		Department: department,
		CreatedAt:  now,
	}
	if product != nil {
		entry.ProductName = product.Name
		entry.MinCommand = product.MinStock
		entry.MaxCommand = product.MaxStock
	}
	if in.MinCommand != nil {
		entry.MinCommand = *in.MinCommand
	}
	if in.MaxCommand != nil {
		entry.MaxCommand = *in.MaxCommand
	}

	// Primero el histórico, después el stock: si el append falla no debe
	// quedar una acreditación sin entrada que la respalde.
	entry.Applied = status == entity.EntryStatusReceived && product != nil
	if err := e.entries.Create(entry); err != nil {
		metrics.LedgerOperations.WithLabelValues("record_entry", "error").Inc()
		return nil, err
	}
	if entry.Applied {
		if err := e.creditStock(product, in.Quantity); err != nil {
			return nil, err
		}
	}
	metrics.LedgerOperations.WithLabelValues("record_entry", "ok").Inc()
	return toEntryResponse(entry), nil
}

// UpdateEntryStatus transiciona una entrada pendiente. pending → received
// acredita el stock exactamente una vez (guardado por Applied); pending →
// cancelled es terminal sin efecto. received y cancelled no admiten más
// transiciones (ErrConflict).
func (e *Engine) UpdateEntryStatus(id, status string) (*dto.EntryResponse, error) {
	if status != entity.EntryStatusReceived && status != entity.EntryStatusCancelled {
		return nil, domain.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	entry, err := e.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.Status != entity.EntryStatusPending {
		return nil, domain.ErrConflict
	}

	if status == entity.EntryStatusReceived && !entry.Applied {
		product, err := e.products.GetByID(entry.ProductID)
		if err != nil {
			return nil, err
		}
		// Referencia huérfana: la transición se registra sin efecto de stock.
		if product != nil {
			if err := e.creditStock(product, entry.Quantity); err != nil {
				return nil, err
			}
			entry.Applied = true
		}
	}
	entry.Status = status
	if err := e.entries.Update(entry); err != nil {
		return nil, err
	}
	metrics.LedgerOperations.WithLabelValues("entry_status", "ok").Inc()
	return toEntryResponse(entry), nil
}

// ListEntries devuelve las entradas visibles para el departamento: todas si
// CanViewAll, solo las propias en caso contrario.
func (e *Engine) ListEntries(dept entity.Department) (*dto.EntryListResponse, error) {
	var (
		list []*entity.StockEntry
		err  error
	)
	if dept.CanViewAll {
		list, err = e.entries.List()
	} else {
		list, err = e.entries.ListByDepartment(dept.ID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(list))
	for _, en := range list {
		items = append(items, *toEntryResponse(en))
	}
	return &dto.EntryListResponse{Items: items, Total: len(items)}, nil
}

// ── Salidas ──────────────────────────────────────────────────────────────────

// RecordExit valida la disponibilidad, agrega la salida al histórico y debita
// el stock con piso en cero. Una cantidad mayor al stock disponible de un
// producto existente se rechaza con ErrInsufficientStock sin aplicar nada; una
// referencia huérfana se tolera (registro guardado, stock intacto).
func (e *Engine) RecordExit(department string, in dto.RecordExitRequest) (*dto.ExitResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product != nil && in.Quantity > product.Stock {
		metrics.LedgerOperations.WithLabelValues("record_exit", "rejected").Inc()
		return nil, domain.ErrInsufficientStock
	}

	exit := &entity.StockExit{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Department: department,
		Reason:     in.Reason,
		User:       in.User,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	if product != nil {
		exit.ProductName = product.Name
		if err := e.debitStock(product, in.Quantity); err != nil {
			return nil, err
		}
	}
	if err := e.exits.Create(exit); err != nil {
		metrics.LedgerOperations.WithLabelValues("record_exit", "error").Inc()
		return nil, err
	}
	metrics.LedgerOperations.WithLabelValues("record_exit", "ok").Inc()
	return toExitResponse(exit), nil
}

// ListExits devuelve las salidas visibles para el departamento.
func (e *Engine) ListExits(dept entity.Department) (*dto.ExitListResponse, error) {
	var (
		list []*entity.StockExit
		err  error
	)
	if dept.CanViewAll {
		list, err = e.exits.List()
	} else {
		list, err = e.exits.ListByDepartment(dept.ID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExitResponse, 0, len(list))
	for _, ex := range list {
		items = append(items, *toExitResponse(ex))
	}
	return &dto.ExitListResponse{Items: items, Total: len(items)}, nil
}

// ── Mutación de stock ────────────────────────────────────────────────────────

// creditStock suma la cantidad y recalcula el estado. Llamar con e.mu tomado.
func (e *Engine) creditStock(product *entity.Product, quantity int) error {
	product.Stock += quantity
	return e.finishMutation(product)
}

// debitStock resta con piso en cero y recalcula el estado. El piso es una
// salvaguarda detrás de la validación de RecordExit, no un sustituto de ella.
// Llamar con e.mu tomado.
func (e *Engine) debitStock(product *entity.Product, quantity int) error {
	product.Stock -= quantity
	if product.Stock < 0 {
		product.Stock = 0
	}
	return e.finishMutation(product)
}

// finishMutation paso obligatorio tras toda mutación de stock: recalcular el
// estado del producto y persistir la copia. Un único punto de recálculo evita
// el estado obsoleto que produce recalcular solo en ediciones manuales.
func (e *Engine) finishMutation(product *entity.Product) error {
	product.Status = DeriveStatus(product.Stock, product.MinStock)
	product.UpdatedAt = time.Now()
	return e.products.Update(product)
}

// resolveStatus conserva el estado fijado por el que llama y deriva solo en
// su ausencia. Cualquier estado así fijado sobrevive hasta la siguiente
// mutación de stock, que siempre recalcula.
func resolveStatus(requested string, stock, minStock int) string {
	if requested != "" {
		return requested
	}
	return DeriveStatus(stock, minStock)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

// ── Mapeos a DTO ─────────────────────────────────────────────────────────────

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		MaxStock:    p.MaxStock,
		Price:       p.Price,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toEntryResponse(en *entity.StockEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:          en.ID,
		ProductID:   en.ProductID,
		ProductName: en.ProductName,
		Supplier:    en.Supplier,
		Quantity:    en.Quantity,
		MinCommand:  en.MinCommand,
		MaxCommand:  en.MaxCommand,
		Date:        en.Date,
		Status:      en.Status,
		Department:  en.Department,
		Applied:     en.Applied,
		CreatedAt:   en.CreatedAt,
	}
}

func toExitResponse(ex *entity.StockExit) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:          ex.ID,
		ProductID:   ex.ProductID,
		ProductName: ex.ProductName,
		Quantity:    ex.Quantity,
		Department:  ex.Department,
		Reason:      ex.Reason,
		User:        ex.User,
		Date:        ex.Date,
		CreatedAt:   ex.CreatedAt,
	}
}
