// Package memory implementa las colecciones del libro de stock en memoria de
// proceso. El estado vive mientras vive el servicio y se reinicia al arrancar:
// la persistencia queda fuera del alcance del sistema. Cada store protege su
// mapa con un RWMutex y devuelve copias, de modo que ninguna referencia
// mutable escapa del propietario de la colección.
package memory

import (
	"sync"

	"github.com/magasin-tech/stock-atelier/internal/domain"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre un mapa en memoria.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]entity.Product
	order []string // orden de inserción para listados estables
}

// NewProductRepository construye la colección de productos vacía.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{byID: make(map[string]entity.Product)}
}

// Create inserta un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; ok {
		return domain.ErrConflict
	}
	r.byID[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Update reemplaza el producto por identidad. No-op si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return nil
	}
	r.byID[product.ID] = *product
	return nil
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.byID))
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Delete elimina por identidad. Sin cascada: el histórico de movimientos que
// referencia al producto se conserva intacto.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
