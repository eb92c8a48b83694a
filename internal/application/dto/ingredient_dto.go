package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body para POST /api/ingredients.
// Las validaciones numéricas (costo > 0, stock inicial ≥ 0) se aplican en el
// caso de uso; aquí solo se valida presencia y forma.
type CreateIngredientRequest struct {
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category" validate:"required,oneof=FERMENTABLE HOP OTHER"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Detail    decimal.Decimal `json:"detail"` // SRM / alfa-ácido / 0
	Unit      string          `json:"unit" validate:"required"`
	OnHandQty decimal.Decimal `json:"on_hand_qty"`
}

// AdjustStockRequest body para PATCH /api/ingredients/:id/stock.
// Delta es aditivo; el resultado queda acotado en 0.
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// UpdateCostRequest body para PATCH /api/ingredients/:id/cost.
type UpdateCostRequest struct {
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// IngredientResponse representación de un ingrediente.
type IngredientResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Detail    decimal.Decimal `json:"detail"`
	Unit      string          `json:"unit"`
	OnHandQty decimal.Decimal `json:"on_hand_qty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockAdjustedResponse resultado de un ajuste de stock.
type StockAdjustedResponse struct {
	ID          int64           `json:"id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}
