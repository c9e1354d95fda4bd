package memory

import (
	"sync"

	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

// ExitRepo implementación del puerto ExitRepository sobre un slice en memoria.
// Solo append y lectura: las salidas no se editan ni se borran.
type ExitRepo struct {
	mu    sync.RWMutex
	exits []entity.StockExit
}

// NewExitRepository construye la colección de salidas vacía.
func NewExitRepository() *ExitRepo {
	return &ExitRepo{}
}

// Create agrega una salida al histórico.
func (r *ExitRepo) Create(exit *entity.StockExit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exits = append(r.exits, *exit)
	return nil
}

// List devuelve copias de todas las salidas en orden de creación.
func (r *ExitRepo) List() ([]*entity.StockExit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockExit, 0, len(r.exits))
	for i := range r.exits {
		cp := r.exits[i]
		out = append(out, &cp)
	}
	return out, nil
}

// ListByDepartment devuelve las salidas registradas por un departamento.
func (r *ExitRepo) ListByDepartment(department string) ([]*entity.StockExit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.StockExit
	for i := range r.exits {
		if r.exits[i].Department == department {
			cp := r.exits[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
