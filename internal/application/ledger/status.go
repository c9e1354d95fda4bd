package ledger

import "github.com/magasin-tech/stock-atelier/internal/domain/entity"

// DeriveStatus clasifica un producto según su stock actual frente al mínimo.
// Es una función pura e idempotente: stock <= minStock produce critical, el
// resto optimal. on_order nunca se deriva aquí; solo se fija manualmente al
// editar el producto y sobrevive hasta la siguiente mutación de stock.
func DeriveStatus(stock, minStock int) string {
	if stock <= minStock {
		return entity.StatusCritical
	}
	return entity.StatusOptimal
}
