package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItemRequest una fila de composición al crear una receta.
type RecipeItemRequest struct {
	IngredientID int64           `json:"ingredient_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateRecipeRequest body para POST /api/recipes.
type CreateRecipeRequest struct {
	Name          string              `json:"name" validate:"required"`
	BaseVolumeBBL decimal.Decimal     `json:"base_volume_bbl"`
	Items         []RecipeItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RecipeResponse fila del listado de recetas.
type RecipeResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	BaseVolumeBBL decimal.Decimal `json:"base_volume_bbl"`
	BaseCost      decimal.Decimal `json:"base_cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RecipeItemResponse fila de composición con nombre y unidad resueltos.
type RecipeItemResponse struct {
	IngredientID int64           `json:"ingredient_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// RecipeDetailResponse receta con su composición.
type RecipeDetailResponse struct {
	RecipeResponse
	Items []RecipeItemResponse `json:"items"`
}
