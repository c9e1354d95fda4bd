package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/magasin-tech/stock-atelier/internal/application/dashboard"
	"github.com/magasin-tech/stock-atelier/internal/application/ledger"
	"github.com/magasin-tech/stock-atelier/internal/application/reports"
	"github.com/magasin-tech/stock-atelier/pkg/departments"
	"github.com/magasin-tech/stock-atelier/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine      *ledger.Engine
	DashboardUC *dashboard.UseCase
	ReportsUC   *reports.UseCase
}

// Router registra las rutas de la API. Todas las rutas de negocio exigen el
// header X-Department (filtro de vista, no autenticación); el CRUD del
// catálogo y la importación exigen además la capacidad de catálogo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// Catálogo de departamentos (público: es la fuente de la pantalla de selección)
	api.Get("/departments", func(c *fiber.Ctx) error {
		return c.JSON(departments.All)
	})

	scoped := api.Group("/", RequireDepartment())

	productHandler := NewProductHandler(deps.Engine)
	reportHandler := NewReportHandler(deps.ReportsUC)
	prods := scoped.Group("/products")
	prods.Get("/", productHandler.List)
	prods.Get("/export", reportHandler.ExportProducts)
	prods.Post("/import", RequireCatalogAccess(), reportHandler.ImportProducts)
	prods.Get("/:id", productHandler.GetByID)
	prods.Post("/", RequireCatalogAccess(), productHandler.Create)
	prods.Put("/:id", RequireCatalogAccess(), productHandler.Update)
	prods.Delete("/:id", RequireCatalogAccess(), productHandler.Delete)

	movementHandler := NewMovementHandler(deps.Engine)
	entries := scoped.Group("/entries")
	entries.Get("/", movementHandler.ListEntries)
	entries.Post("/", movementHandler.RecordEntry)
	entries.Patch("/:id/status", movementHandler.UpdateEntryStatus)

	exits := scoped.Group("/exits")
	exits.Get("/", movementHandler.ListExits)
	exits.Get("/export", reportHandler.ExportExits)
	exits.Get("/report.pdf", reportHandler.ExportExitsPDF)
	exits.Post("/", movementHandler.RecordExit)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	scoped.Get("/dashboard", dashboardHandler.Summary)
}
