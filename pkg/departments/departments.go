// Package departments define el catálogo estático de departamentos. Elegir
// departamento no es autenticación: es un filtro de vista sin secreto alguno.
package departments

import "github.com/magasin-tech/stock-atelier/internal/domain/entity"

// All catálogo completo. Solo el departamento técnico administra el catálogo
// de productos y ve los movimientos de todos los demás.
var All = []entity.Department{
	{ID: "technique", Name: "Département Technique", CanAddProducts: true, CanViewAll: true},
	{ID: "qualite", Name: "Qualité", CanAddProducts: false, CanViewAll: false},
	{ID: "production", Name: "Production", CanAddProducts: false, CanViewAll: false},
	{ID: "maintenance", Name: "Maintenance", CanAddProducts: false, CanViewAll: false},
	{ID: "administration", Name: "Administration", CanAddProducts: false, CanViewAll: false},
}

// Find busca un departamento por ID.
func Find(id string) (entity.Department, bool) {
	for _, d := range All {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Department{}, false
}
