package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentUC   *usecase.DocumentUseCase
	IngredientUC *usecase.IngredientUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	MarginUC     *usecase.MarginUseCase
	PricingUC    *usecase.PricingUseCase
	ExportUC     *usecase.ExportUseCase
	AIUC         *usecase.AIUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Documento completo (formato persistido)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	api.Get("/data", documentHandler.Get)
	api.Put("/data", documentHandler.Replace)
	api.Get("/settings/rates", documentHandler.Rates)
	api.Put("/settings/rates", documentHandler.UpdateRates)

	// Ingredients
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Patch("/:id/price", ingredientHandler.UpdatePrice)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Products y recetas; /order antes de /:id
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/order", productHandler.Reorder)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/category", productHandler.Move)
	products.Get("/:id/cost", productHandler.Cost)
	products.Post("/:id/recipe", productHandler.AttachIngredient)
	products.Put("/:id/recipe/:ingredientId", productHandler.SetQuantity)
	products.Delete("/:id/recipe/:ingredientId", productHandler.DetachIngredient)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Margins
	margins := api.Group("/margins")
	marginHandler := NewMarginHandler(deps.MarginUC)
	margins.Get("/", marginHandler.List)
	margins.Post("/", marginHandler.Create)
	margins.Put("/:id", marginHandler.Update)
	margins.Delete("/:id", marginHandler.Delete)

	// Pricing y exportaciones
	pricingHandler := NewPricingHandler(deps.PricingUC, deps.ExportUC)
	api.Get("/pricing/table", pricingHandler.Table)
	api.Post("/pricing/quote", pricingHandler.Quote)
	if deps.ExportUC != nil {
		api.Get("/export/pricing.xlsx", pricingHandler.ExportXLSX)
		api.Get("/export/pricing.pdf", pricingHandler.ExportPDF)
	}

	// AI
	if deps.AIUC != nil {
		aiHandler := NewAIHandler(deps.AIUC)
		api.Post("/ai/suggest-margin", aiHandler.SuggestMargin)
	}
}
