package memory

import (
	"sync"

	"github.com/magasin-tech/stock-atelier/internal/domain"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación del puerto EntryRepository sobre un slice en memoria.
// El slice conserva el orden de creación, que es el orden de los listados.
type EntryRepo struct {
	mu      sync.RWMutex
	entries []entity.StockEntry
}

// NewEntryRepository construye la colección de entradas vacía.
func NewEntryRepository() *EntryRepo {
	return &EntryRepo{}
}

// Create agrega una entrada al histórico.
func (r *EntryRepo) Create(entry *entity.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == entry.ID {
			return domain.ErrConflict
		}
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// GetByID devuelve una copia de la entrada, o nil si no existe.
func (r *EntryRepo) GetByID(id string) (*entity.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la entrada por identidad (transiciones de estado).
func (r *EntryRepo) Update(entry *entity.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todas las entradas en orden de creación.
func (r *EntryRepo) List() ([]*entity.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockEntry, 0, len(r.entries))
	for i := range r.entries {
		cp := r.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

// ListByDepartment devuelve las entradas originadas por un departamento.
func (r *EntryRepo) ListByDepartment(department string) ([]*entity.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.StockEntry
	for i := range r.entries {
		if r.entries[i].Department == department {
			cp := r.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
