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
	"github.com/jhoicas/Autopartes-api/internal/application/auth"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/application/reports"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Autopartes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Autopartes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Autopartes-api/internal/interfaces/http"
	"github.com/jhoicas/Autopartes-api/pkg/config"
	"github.com/jhoicas/Autopartes-api/pkg/logger"
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

	partRepo := postgres.NewPartRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, partRepo, movementRepo)
	partUC := usecase.NewPartUseCase(partRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	quotationUC := usecase.NewQuotationUseCase(txRunner, quotationRepo, partRepo)
	orderUC := usecase.NewPurchaseOrderUseCase(txRunner, orderRepo, supplierRepo, partRepo, registerMovementUC)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	exportUC := reports.NewExportUseCase(partRepo, movementRepo, statsRepo, reportUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Autopartes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:           partUC,
		SupplierUC:       supplierUC,
		CategoryUC:       categoryUC,
		RegisterMovement: registerMovementUC,
		ReportUC:         reportUC,
		ExportUC:         exportUC,
		UserUC:           userUC,
		QuotationUC:      quotationUC,
		PurchaseOrderUC:  orderUC,
		AppointmentUC:    appointmentUC,
		StatsUC:          statsUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
