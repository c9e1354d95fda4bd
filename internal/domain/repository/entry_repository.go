package repository

import "github.com/magasin-tech/stock-atelier/internal/domain/entity"

// EntryRepository define el puerto de la colección de entradas de stock (DIP).
// La colección es append-mostly: solo Update para transiciones de estado.
type EntryRepository interface {
	Create(entry *entity.StockEntry) error
	GetByID(id string) (*entity.StockEntry, error)
	Update(entry *entity.StockEntry) error
	List() ([]*entity.StockEntry, error)
	ListByDepartment(department string) ([]*entity.StockEntry, error)
}
