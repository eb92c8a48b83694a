package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScaleRequest body para POST /api/brewing/scale y /api/brewing/batches.
type ScaleRequest struct {
	RecipeID        int64           `json:"recipe_id" validate:"required"`
	TargetVolumeBBL decimal.Decimal `json:"target_volume_bbl"`
}

// ScaledItemResponse requerimiento escalado de un ingrediente.
type ScaledItemResponse struct {
	IngredientID int64           `json:"ingredient_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ScaleResponse resultado del escalado con la cotización vigente.
type ScaleResponse struct {
	RecipeID        int64                `json:"recipe_id"`
	RecipeName      string               `json:"recipe_name"`
	TargetVolumeBBL decimal.Decimal      `json:"target_volume_bbl"`
	ScaleFactor     decimal.Decimal      `json:"scale_factor"`
	Items           []ScaledItemResponse `json:"items"`
	TotalCost       decimal.Decimal      `json:"total_cost"`
	QuotedPrice     decimal.Decimal      `json:"quoted_price"`
}

// BatchConfirmationResponse resultado de confirmar un lote.
type BatchConfirmationResponse struct {
	BatchID       int64           `json:"batch_id"`
	TransactionID string          `json:"transaction_id"`
	RecipeName    string          `json:"recipe_name"`
	VolumeBBL     decimal.Decimal `json:"volume_bbl"`
	FinalCost     decimal.Decimal `json:"final_cost"`
	BrewedAt      time.Time       `json:"brewed_at"`
}

// BatchRecordResponse entrada del historial de lotes.
type BatchRecordResponse struct {
	ID         int64           `json:"id"`
	RecipeName string          `json:"recipe_name"`
	VolumeBBL  decimal.Decimal `json:"volume_bbl"`
	FinalCost  decimal.Decimal `json:"final_cost"`
	BrewedAt   time.Time       `json:"brewed_at"`
}
