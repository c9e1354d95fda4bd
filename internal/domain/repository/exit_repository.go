package repository

import "github.com/magasin-tech/stock-atelier/internal/domain/entity"

// ExitRepository define el puerto de la colección de salidas de stock (DIP).
// Las salidas son inmutables una vez creadas: solo append y lectura.
type ExitRepository interface {
	Create(exit *entity.StockExit) error
	List() ([]*entity.StockExit, error)
	ListByDepartment(department string) ([]*entity.StockExit, error)
}
