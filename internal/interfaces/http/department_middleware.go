package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magasin-tech/stock-atelier/internal/application/dto"
	"github.com/magasin-tech/stock-atelier/internal/domain/entity"
	"github.com/magasin-tech/stock-atelier/pkg/departments"
)

// HeaderDepartment header con el ID del departamento seleccionado. No es una
// credencial: el departamento es un filtro de vista sin autenticación, el
// mismo que la pantalla de selección del tablero original.
const HeaderDepartment = "X-Department"

const localDepartment = "department"

// RequireDepartment resuelve el header X-Department contra el catálogo y deja
// el descriptor en los locals de la petición.
func RequireDepartment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderDepartment)
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "MISSING_DEPARTMENT", Message: "header X-Department requerido",
			})
		}
		dept, ok := departments.Find(id)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_DEPARTMENT", Message: "departamento desconocido: " + id,
			})
		}
		c.Locals(localDepartment, dept)
		return c.Next()
	}
}

// RequireCatalogAccess exige la capacidad CanAddProducts (solo el departamento
// técnico administra el catálogo). Corre después de RequireDepartment.
func RequireCatalogAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dept := GetDepartment(c)
		if !dept.CanAddProducts {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "el departamento no administra el catálogo",
			})
		}
		return c.Next()
	}
}

// GetDepartment devuelve el descriptor dejado por RequireDepartment.
func GetDepartment(c *fiber.Ctx) entity.Department {
	if d, ok := c.Locals(localDepartment).(entity.Department); ok {
		return d
	}
	return entity.Department{}
}
