package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchRecord es una entrada inmutable del historial de lotes producidos.
// RecipeName va denormalizado: la receta puede renombrarse o borrarse después
// sin afectar el historial.
type BatchRecord struct {
	ID         int64
	RecipeName string
	VolumeBBL  decimal.Decimal
	FinalCost  decimal.Decimal // precio cotizado con margen incluido
	BrewedAt   time.Time
}

// BatchItem es el requerimiento escalado de un ingrediente para un lote.
// Nombre y unidad se resuelven contra el gateway al momento del escalado.
type BatchItem struct {
	IngredientID int64
	Name         string
	Unit         string
	Quantity     decimal.Decimal
}
