package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportSummary resultado de una importación de productos desde hoja de cálculo.
// Skipped cuenta las filas descartadas por nombre vacío tras aplicar defaults.
type ImportSummary struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Products []ProductResponse `json:"products"`
}
