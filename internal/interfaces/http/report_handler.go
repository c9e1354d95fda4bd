package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/application/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler maneja exportaciones (xlsx, PDF) e importación de productos.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportExits descarga el informe xlsx de salidas visibles para el
// departamento actual.
func (h *ReportHandler) ExportExits(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportExitsXLSX(GetDepartment(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, data, name, xlsxContentType)
}

// ExportExitsPDF descarga el informe de salidas en PDF.
func (h *ReportHandler) ExportExitsPDF(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportExitsPDF(c.Context(), GetDepartment(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, data, name, "application/pdf")
}

// ExportProducts descarga el catálogo completo en xlsx.
func (h *ReportHandler) ExportProducts(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportProductsXLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, data, name, xlsxContentType)
}

// ImportProducts recibe un libro xlsx (multipart, campo "file") y da de alta
// sus filas en orden de archivo.
func (h *ReportHandler) ImportProducts(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	summary, err := h.uc.ImportProducts(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

func sendAttachment(c *fiber.Ctx, data []byte, name, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
