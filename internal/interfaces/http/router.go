package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repucenter/repucenter-api/internal/application/auth"
	"github.com/repucenter/repucenter-api/internal/application/inventory"
	"github.com/repucenter/repucenter-api/internal/application/usecase"
	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	StockUC          *inventory.StockUseCase
	TraceUC          *inventory.TraceUseCase
	ProductUC        *usecase.ProductUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Los paths son contrato con el cliente
// (SPA existente), por eso van en la raíz y no bajo un prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: listado con stock y stock por SKU
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/:sku/stock", productHandler.Stock)

	// Trace: línea de tiempo y stock por SKU
	traceHandler := NewTraceHandler(deps.TraceUC, deps.StockUC)
	protected.Get("/trace/:sku", traceHandler.Trace)
	protected.Get("/trace/:sku/stock", traceHandler.Stock)

	// Movements: escritura restringida al rol jefe de bodega
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	protected.Post("/movements", RequireRole(entity.RoleJefeBodega), movementHandler.Create)
}
