package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/csm-sistemas/controlfin-api/internal/application/analytics"
	"github.com/csm-sistemas/controlfin-api/internal/application/expenses"
	"github.com/csm-sistemas/controlfin-api/internal/application/inventory"
	"github.com/csm-sistemas/controlfin-api/internal/application/partners"
	"github.com/csm-sistemas/controlfin-api/internal/application/sales"
	"github.com/csm-sistemas/controlfin-api/internal/domain/schema"
	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/gsheets"
	infrapdf "github.com/csm-sistemas/controlfin-api/internal/infrastructure/pdf"
	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/sheetstore"
	httpRouter "github.com/csm-sistemas/controlfin-api/internal/interfaces/http"
	"github.com/csm-sistemas/controlfin-api/pkg/config"
	"github.com/csm-sistemas/controlfin-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	remote, err := gsheets.New(ctx, gsheets.Config{
		CredentialsFile: cfg.Sheets.CredentialsFile,
		SpreadsheetURL:  cfg.Sheets.SpreadsheetURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la planilla")
	}

	schemas := schema.NewRegistry()
	store := sheetstore.New(remote, schemas, sheetstore.Config{
		TTL:        cfg.Cache.TTL(),
		RetryDelay: cfg.Cache.RetryDelay(),
		Logger:     log.Zerolog(),
	})

	clientRepo := sheetstore.NewClientRepository(store)
	expenseRepo := sheetstore.NewExpenseRepository(store)
	productRepo := sheetstore.NewProductRepository(store)
	movementRepo := sheetstore.NewMovementRepository(store)
	receivableRepo := sheetstore.NewReceivableRepository(store)
	partnerRepo := sheetstore.NewPartnerRepository(store)

	stockLedger := inventory.NewStockLedger(productRepo, movementRepo, nil)
	salesUC := sales.NewSaleTransaction(productRepo, movementRepo, receivableRepo, nil)
	expenseUC := expenses.NewExpenseUseCase(expenseRepo, nil)
	partnerUC := partners.NewPartnerUseCase(partnerRepo, nil)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, expenseRepo, receivableRepo, nil)

	statementGen := infrapdf.NewMarotoStatementGenerator()
	clientUC := analytics.NewClientUseCase(clientRepo, receivableRepo, statementGen, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ClientUC:    clientUC,
		StockLedger: stockLedger,
		SalesUC:     salesUC,
		ExpenseUC:   expenseUC,
		PartnerUC:   partnerUC,
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
}
