package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de ingrediente. Detail guarda el atributo propio de cada una:
// color SRM para FERMENTABLE, porcentaje de alfa-ácido para HOP, 0 para OTHER
// (levaduras, especias, frutas).
const (
	CategoryFermentable = "FERMENTABLE"
	CategoryHop         = "HOP"
	CategoryOther       = "OTHER"
)

// ValidCategory verifica que la categoría sea una de las tres conocidas.
func ValidCategory(c string) bool {
	return c == CategoryFermentable || c == CategoryHop || c == CategoryOther
}

// Ingredient representa un insumo del inventario de la cervecería.
// OnHandQty nunca es negativo; los ajustes de stock son aditivos con piso en 0.
type Ingredient struct {
	ID        int64
	Name      string // único
	Category  string
	UnitCost  decimal.Decimal // costo por unidad de medida, > 0
	Detail    decimal.Decimal // SRM / alfa-ácido / 0 según categoría
	Unit      string          // lb, oz, packet, gal...
	OnHandQty decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
