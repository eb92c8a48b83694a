package http

import (
	"github.com/gofiber/fiber/v2"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC *usecase.IngredientUseCase
	MovementUC   *usecase.MovementHistoryUseCase
	RecipeUC     *usecase.RecipeUseCase
	BatchLogUC   *usecase.BatchLogUseCase
	ScaleUC      *appbrew.ScaleRecipeUseCase
	CostUC       *appbrew.CostEstimator
	CommitUC     *appbrew.CommitBatchUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ingredients
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.MovementUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Patch("/:id/stock", ingredientHandler.AdjustStock)
	ingredients.Patch("/:id/cost", ingredientHandler.UpdateCost)
	ingredients.Get("/:id/movements", ingredientHandler.Movements)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Recipes
	recipes := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Get("/:id/beerxml", recipeHandler.ExportBeerXML)
	recipes.Delete("/:id", recipeHandler.Delete)

	// Brewing (vista previa y confirmación de lotes)
	brewing := api.Group("/brewing")
	brewingHandler := NewBrewingHandler(deps.ScaleUC, deps.CostUC, deps.CommitUC)
	brewing.Post("/scale", brewingHandler.Scale)
	brewing.Post("/batches", brewingHandler.CommitBatch)

	// Batch log (historial y exportes)
	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchLogUC)
	batches.Get("/", batchHandler.List)
	batches.Get("/export", batchHandler.ExportCSV)
	batches.Get("/report", batchHandler.ReportPDF)
}
