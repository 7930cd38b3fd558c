package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Autopartes-api/internal/application/auth"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/application/reports"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartUC           *usecase.PartUseCase
	SupplierUC       *usecase.SupplierUseCase
	CategoryUC       *usecase.CategoryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *usecase.ReportUseCase
	ExportUC         *reports.ExportUseCase
	UserUC           *usecase.UserUseCase
	QuotationUC      *usecase.QuotationUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	AppointmentUC    *usecase.AppointmentUseCase
	StatsUC          *usecase.StatsUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Parts (protegido). /low-stock va antes de /:id para que no lo capture el parámetro.
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/low-stock", partHandler.ListLowStock)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Movements (protegido, append-only)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)

	// Reports (protegido). Exportación antes de /:id por la misma razón que parts.
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC)
	reportsGroup.Post("/", reportHandler.Create)
	reportsGroup.Get("/", reportHandler.List)
	reportsGroup.Get("/:type/pdf", reportHandler.ExportPDF)
	reportsGroup.Get("/:type/csv", reportHandler.ExportCSV)
	reportsGroup.Get("/:id", reportHandler.GetByID)
	reportsGroup.Delete("/:id", reportHandler.Delete)

	// Quotations (protegido)
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Post("/:id/status", quotationHandler.UpdateStatus)
	quotations.Delete("/:id", quotationHandler.Delete)

	// Purchase orders (protegido)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/receive", orderHandler.Receive)
	orders.Delete("/:id", orderHandler.Delete)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Stats (protegido)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Overview)

	// Users (protegido, solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
