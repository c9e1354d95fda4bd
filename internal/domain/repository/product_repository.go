package repository

import "github.com/magasin-tech/stock-atelier/internal/domain/entity"

// ProductRepository define el puerto de la colección de productos (DIP).
// Las implementaciones devuelven copias: ninguna referencia mutable sale del
// propietario de la colección.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
