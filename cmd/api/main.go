package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/sync/errgroup"

	_ "github.com/jhoicas/inventory-alerts/docs"
	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventory-alerts/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-alerts/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-alerts/internal/interfaces/http"
	"github.com/jhoicas/inventory-alerts/pkg/config"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// @title        Inventory Alerts API
// @version      1.0
// @description  Alertas de bajo stock por empresa y bodega.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("alerts_window_days", cfg.Alerts.WindowDays).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	lowStockRepo := postgres.NewLowStockRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	lowStockUC := inventory.NewLowStockAlertUseCase(lowStockRepo, cfg.Alerts.WindowDays, log)
	// PDF: mismo cálculo que el endpoint JSON
	reportUC := inventory.NewLowStockReportUseCase(lowStockUC, infrapdf.NewMarotoReportGenerator())
	recordEventUC := inventory.NewRecordEventUseCase(txRunner)
	productUC := usecase.NewProductUseCase(txRunner, warehouseRepo, supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Alerts API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		LowStockAlerts: lowStockUC,
		LowStockReport: reportUC,
		RecordEvent:    recordEventUC,
		ProductUC:      productUC,
		JWTSecret:      cfg.JWT.Secret,
		Logger:         log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}
