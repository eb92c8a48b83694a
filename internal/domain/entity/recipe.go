package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe es una receta maestra. BaseCost se calcula una sola vez al crearla
// a partir de los costos vigentes de la composición; es solo informativo y
// no se recalcula cuando cambia el costo de un ingrediente.
type Recipe struct {
	ID         int64
	Name       string          // único
	BaseVolume decimal.Decimal // volumen base del lote (BBL), mayor al mínimo
	BaseCost   decimal.Decimal
	CreatedAt  time.Time
}

// RecipeItem es una fila de la composición: cantidad requerida de un
// ingrediente al volumen base. Clave compuesta (receta, ingrediente).
type RecipeItem struct {
	RecipeID     int64
	IngredientID int64
	Quantity     decimal.Decimal // > 0
}
