package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/application/usecase"
	"github.com/schartrand77/stockworks/internal/infrastructure/orderworks"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC     *usecase.MaterialUseCase
	HardwareDefUC  *usecase.HardwareDefinitionUseCase
	InventoryUC    *usecase.InventoryItemUseCase
	HardwareItemUC *usecase.HardwareItemUseCase
	PricingUC      *usecase.PricingUseCase
	FilamentLedger *ledger.UseCase
	HardwareLedger *ledger.UseCase
	QuotePDF       QuotePDFGenerator
	OrderWorks     *orderworks.Client
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Materials (catálogo de filamentos)
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Inventory (cuentas de filamento + libro). Las rutas fijas van antes
	// que :id para que fiber no las capture como parámetro.
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.FilamentLedger)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.ListLowStock)
	inventory.Post("/movements", inventoryHandler.ApplyMovement)
	inventory.Get("/:id/movements", inventoryHandler.ListMovements)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Hardware (catálogo + cuentas + libro)
	hardware := api.Group("/hardware")
	hardwareHandler := NewHardwareHandler(deps.HardwareDefUC, deps.HardwareItemUC, deps.HardwareLedger)
	definitions := hardware.Group("/definitions")
	definitions.Post("/", hardwareHandler.CreateDefinition)
	definitions.Get("/", hardwareHandler.ListDefinitions)
	definitions.Get("/:id", hardwareHandler.GetDefinition)
	definitions.Put("/:id", hardwareHandler.UpdateDefinition)
	definitions.Delete("/:id", hardwareHandler.DeleteDefinition)

	items := hardware.Group("/items")
	items.Post("/", hardwareHandler.CreateItem)
	items.Get("/", hardwareHandler.ListItems)
	items.Get("/low-stock", hardwareHandler.ListItemsLowStock)
	items.Get("/:id/movements", hardwareHandler.ListMovements)
	items.Get("/:id", hardwareHandler.GetItem)
	items.Put("/:id", hardwareHandler.UpdateItem)
	items.Delete("/:id", hardwareHandler.DeleteItem)
	hardware.Post("/movements", hardwareHandler.ApplyMovement)

	// Pricing (puro, sin persistencia)
	pricing := api.Group("/pricing")
	pricingHandler := NewPricingHandler(deps.PricingUC, deps.QuotePDF)
	pricing.Post("/quote", pricingHandler.Quote)
	pricing.Post("/quote/pdf", pricingHandler.QuotePDF)

	// OrderWorks (integración externa)
	if deps.OrderWorks != nil {
		ow := api.Group("/orderworks")
		owHandler := NewOrderWorksHandler(deps.OrderWorks)
		ow.Get("/jobs", owHandler.ListJobs)
	}
}
