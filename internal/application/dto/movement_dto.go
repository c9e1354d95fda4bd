package dto

import "time"

// RecordEntryRequest body para POST /api/entries.
// MinCommand/MaxCommand se copian de los umbrales del producto si se omiten.
// Date en formato 2006-01-02; vacío = hoy. Status por defecto: pending.
type RecordEntryRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	Supplier   string `json:"supplier"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	MinCommand *int   `json:"min_command,omitempty"`
	MaxCommand *int   `json:"max_command,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status" validate:"omitempty,oneof=pending received cancelled"`
}

// UpdateEntryStatusRequest body para PATCH /api/entries/:id/status.
// Solo se admite la transición desde pending.
type UpdateEntryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received cancelled"`
}

// EntryResponse salida de una entrada de stock.
type EntryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Supplier    string    `json:"supplier"`
	Quantity    int       `json:"quantity"`
	MinCommand  int       `json:"min_command"`
	MaxCommand  int       `json:"max_command"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Department  string    `json:"department"`
	Applied     bool      `json:"applied"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntryListResponse listado de entradas visible para el departamento actual.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}

// RecordExitRequest body para POST /api/exits.
type RecordExitRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
	User      string `json:"user"`
	Date      string `json:"date"`
}

// ExitResponse salida de una salida de stock.
type ExitResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Department  string    `json:"department"`
	Reason      string    `json:"reason"`
	User        string    `json:"user"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExitListResponse listado de salidas visible para el departamento actual.
type ExitListResponse struct {
	Items []ExitResponse `json:"items"`
	Total int            `json:"total"`
}
