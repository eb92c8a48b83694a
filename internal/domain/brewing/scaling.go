// Package brewing contiene los servicios de dominio puros del motor de
// lotes: escalado proporcional de recetas y agregación de costos.
package brewing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
)

// ScaleFactor calcula el factor lineal objetivo/base. Ambos volúmenes deben
// superar el mínimo configurado (BBL); si no, ErrInvalidVolume sin computar nada.
func ScaleFactor(baseVolume, targetVolume, minVolume decimal.Decimal) (decimal.Decimal, error) {
	if baseVolume.LessThanOrEqual(minVolume) || targetVolume.LessThanOrEqual(minVolume) {
		return decimal.Zero, domain.ErrInvalidVolume
	}
	return targetVolume.Div(baseVolume), nil
}

// ScaleQuantity aplica el factor a una cantidad base de la composición.
func ScaleQuantity(baseQty, factor decimal.Decimal) decimal.Decimal {
	return baseQty.Mul(factor)
}
