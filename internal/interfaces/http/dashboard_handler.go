package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magasin-tech/stock-atelier/internal/application/dashboard"
	"github.com/magasin-tech/stock-atelier/internal/application/dto"
)

// DashboardHandler maneja la petición del resumen del tablero.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve el resumen para el departamento actual.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(GetDepartment(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
