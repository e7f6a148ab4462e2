package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/csm-sistemas/controlfin-api/internal/application/analytics"
	"github.com/csm-sistemas/controlfin-api/internal/application/expenses"
	"github.com/csm-sistemas/controlfin-api/internal/application/inventory"
	"github.com/csm-sistemas/controlfin-api/internal/application/partners"
	"github.com/csm-sistemas/controlfin-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *analytics.DashboardUseCase
	ClientUC    *analytics.ClientUseCase
	StockLedger *inventory.StockLedger
	SalesUC     *sales.SaleTransaction
	ExpenseUC   *expenses.ExpenseUseCase
	PartnerUC   *partners.PartnerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Operación
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.Summary)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:name/summary", clientHandler.Summary)
	clients.Get("/:name/statement", clientHandler.Statement)

	// Productos e inventario
	productHandler := NewProductHandler(deps.StockLedger)
	productsGroup := api.Group("/products")
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/low-stock", productHandler.LowStock)
	invGroup := api.Group("/inventory")
	invGroup.Post("/movements", productHandler.RegisterMovement)
	invGroup.Post("/purchases/upload", productHandler.UploadPurchases)

	// Ventas y cobranzas
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", salesHandler.RegisterSale)
	salesGroup.Post("/upload", salesHandler.UploadSales)
	collections := api.Group("/collections")
	collections.Get("/", salesHandler.PendingCollections)
	collections.Post("/:index/pay", salesHandler.MarkPaid)

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expensesGroup := api.Group("/expenses")
	expensesGroup.Post("/", expenseHandler.Register)
	expensesGroup.Get("/summary", expenseHandler.Summary)

	// Socios
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partnersGroup := api.Group("/partners")
	partnersGroup.Post("/contributions", partnerHandler.Register)
	partnersGroup.Get("/summary", partnerHandler.Summary)
}
