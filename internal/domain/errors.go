package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateName     = errors.New("el nombre ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidVolume     = errors.New("volumen por debajo del mínimo de lote")
	ErrIngredientInUse   = errors.New("el ingrediente está referenciado por una receta")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError identifica el primer faltante encontrado al validar
// un lote: el ingrediente, lo que se necesita y lo que hay disponible.
type InsufficientStockError struct {
	IngredientID int64
	Name         string
	Needed       decimal.Decimal
	Available    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: necesita %s, disponible %s",
		e.Name, e.Needed.StringFixed(2), e.Available.StringFixed(2))
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
