package brewing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

// UnitCostFn resuelve el costo unitario vigente de un ingrediente.
type UnitCostFn func(ingredientID int64) (decimal.Decimal, error)

// TotalCost agrega el costo crudo de una lista escalada. Contrato recursivo:
// la lista vacía cuesta 0 (caso base); una lista no vacía cuesta la cabeza
// (costo unitario × cantidad) más el costo de la cola (paso inductivo).
// Se implementa como fold iterativo para no crecer la pila con listas
// grandes; el resultado observable es idéntico e independiente del orden.
func TotalCost(items []entity.BatchItem, unitCost UnitCostFn) (decimal.Decimal, error) {
	total := decimal.Zero // caso base
	for _, it := range items {
		cost, err := unitCost(it.IngredientID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost.Mul(it.Quantity)) // paso inductivo
	}
	return total, nil
}

// QuotedPrice aplica el margen fijo de venta al costo crudo.
func QuotedPrice(totalCost, markupFactor decimal.Decimal) decimal.Decimal {
	return totalCost.Mul(markupFactor)
}
