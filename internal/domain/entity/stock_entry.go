package entity

import "time"

// Estados del ciclo de vida de una entrada de stock.
// pending → received acredita el stock una sola vez; pending → cancelled es
// terminal sin efecto; received y cancelled no admiten más transiciones.
const (
	EntryStatusPending   = "pending"
	EntryStatusReceived  = "received"
	EntryStatusCancelled = "cancelled"
)

// StockEntry representa un movimiento entrante (pedido a proveedor).
// ProductName es un snapshot al momento de crearla; si el producto se elimina
// después, la referencia queda huérfana y el histórico se conserva.
type StockEntry struct {
	ID          string
	ProductID   string
	ProductName string
	Supplier    string
	Quantity    int
	MinCommand  int // copiado de MinStock del producto al crear, editable
	MaxCommand  int // copiado de MaxStock del producto al crear, editable
	Date        time.Time
	Status      string // pending, received, cancelled
	Department  string
	// Applied marca si la cantidad ya fue acreditada al stock. Garantiza
	// acreditación at-most-once aunque el estado se transicione después.
	Applied   bool
	CreatedAt time.Time
}

// ValidEntryStatus indica si s es un estado de entrada conocido.
func ValidEntryStatus(s string) bool {
	return s == EntryStatusPending || s == EntryStatusReceived || s == EntryStatusCancelled
}
