package entity

import "time"

// StockExit representa un movimiento saliente. A diferencia de las entradas no
// tiene ciclo de vida: toda salida se aplica al stock en el momento de crearla.
type StockExit struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	Department  string
	Reason      string
	User        string // opcional
	Date        time.Time
	CreatedAt   time.Time
}
