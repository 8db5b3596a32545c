package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/application/usecase"
	"github.com/schartrand77/stockworks/internal/infrastructure/orderworks"
	infrapdf "github.com/schartrand77/stockworks/internal/infrastructure/pdf"
	"github.com/schartrand77/stockworks/internal/infrastructure/postgres"
	httpRouter "github.com/schartrand77/stockworks/internal/interfaces/http"
	"github.com/schartrand77/stockworks/pkg/config"
	"github.com/schartrand77/stockworks/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	// Repositorios atados al pool (lecturas y CRUD fuera de transacción)
	materialRepo := postgres.NewMaterialRepo(pool)
	hardwareDefRepo := postgres.NewHardwareDefinitionRepo(pool)
	inventoryItemRepo := postgres.NewInventoryItemRepo(pool)
	hardwareItemRepo := postgres.NewHardwareItemRepo(pool)
	stockMovementRepo := postgres.NewStockMovementRepo(pool)
	hardwareMovementRepo := postgres.NewHardwareMovementRepo(pool)

	// Un libro por familia de cuentas, cada uno con su runner transaccional
	filamentLedger := ledger.NewUseCase(
		postgres.NewInventoryLedgerTxRunner(pool), inventoryItemRepo, stockMovementRepo,
	)
	hardwareLedger := ledger.NewUseCase(
		postgres.NewHardwareLedgerTxRunner(pool), hardwareItemRepo, hardwareMovementRepo,
	)

	materialUC := usecase.NewMaterialUseCase(materialRepo, inventoryItemRepo)
	hardwareDefUC := usecase.NewHardwareDefinitionUseCase(hardwareDefRepo, hardwareItemRepo)
	inventoryUC := usecase.NewInventoryItemUseCase(inventoryItemRepo, materialRepo, filamentLedger)
	hardwareItemUC := usecase.NewHardwareItemUseCase(hardwareItemRepo, hardwareDefRepo, hardwareLedger)
	pricingUC := usecase.NewPricingUseCase(materialRepo)

	quotePDF := infrapdf.NewQuotePDFGenerator()
	owClient := orderworks.NewClient(
		cfg.OrderWorks.BaseURL, cfg.OrderWorks.Username, cfg.OrderWorks.Password,
	)
	if !owClient.IsConfigured() {
		log.Warn().Msg("integración OrderWorks sin configurar; sus endpoints responderán 503")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockWorks API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:     materialUC,
		HardwareDefUC:  hardwareDefUC,
		InventoryUC:    inventoryUC,
		HardwareItemUC: hardwareItemUC,
		PricingUC:      pricingUC,
		FilamentLedger: filamentLedger,
		HardwareLedger: hardwareLedger,
		QuotePDF:       quotePDF,
		OrderWorks:     owClient,
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
