package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teopopescu15/Inventory-app/internal/application/auth"
	"github.com/teopopescu15/Inventory-app/internal/application/billing"
	appOrder "github.com/teopopescu15/Inventory-app/internal/application/order"
	"github.com/teopopescu15/Inventory-app/internal/application/usecase"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *appOrder.UseCase
	HistoryUC  *usecase.HistoryUseCase
	AnalysisUC *usecase.AnalysisUseCase
	PDFUC      *billing.PDFUseCase
	JWTSecret  string
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

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
	products.Get("/:id/history", historyHandler.ByProduct)

	// Orders (protegido): borradores, finalización y factura
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PDFUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/finalize", orderHandler.Finalize)
	orders.Get("/:id/invoice", orderHandler.DownloadInvoice)

	// Ledger y análisis (protegido)
	protected.Get("/history", historyHandler.ByCompany)
	analysisHandler := NewAnalysisHandler(deps.AnalysisUC)
	protected.Get("/analysis", analysisHandler.Analyze)
}
