package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/magasin-tech/stock-atelier/internal/application/dashboard"
	"github.com/magasin-tech/stock-atelier/internal/application/ledger"
	"github.com/magasin-tech/stock-atelier/internal/application/reports"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/memory"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/pdf"
	"github.com/magasin-tech/stock-atelier/internal/infrastructure/spreadsheet"
	httpRouter "github.com/magasin-tech/stock-atelier/internal/interfaces/http"
	"github.com/magasin-tech/stock-atelier/pkg/config"
	"github.com/magasin-tech/stock-atelier/pkg/logger"
	"github.com/magasin-tech/stock-atelier/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	metrics.Register()

	// Colecciones en memoria: el estado vive mientras vive el proceso.
	productRepo := memory.NewProductRepository()
	entryRepo := memory.NewEntryRepository()
	exitRepo := memory.NewExitRepository()

	if cfg.App.SeedDemo {
		if err := memory.SeedDemo(productRepo, entryRepo, exitRepo); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	engine := ledger.NewEngine(productRepo, entryRepo, exitRepo)
	dashboardUC := dashboard.NewUseCase(productRepo, entryRepo, exitRepo)
	reportsUC := reports.NewUseCase(
		engine, productRepo, exitRepo,
		spreadsheet.NewCodec(),
		pdf.NewMarotoExitsReport(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.FiberMiddleware(cfg.App.Name))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine:      engine,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
