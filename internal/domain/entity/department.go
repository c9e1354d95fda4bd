package entity

// Department es un descriptor estático de departamento. No es un principal de
// autenticación: seleccionarlo solo filtra la vista. CanViewAll permite ver los
// movimientos de todos los departamentos; CanAddProducts habilita el CRUD del
// catálogo de productos.
type Department struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CanAddProducts bool   `json:"can_add_products"`
	CanViewAll     bool   `json:"can_view_all"`
}
