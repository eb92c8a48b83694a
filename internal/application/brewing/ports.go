package brewing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de lotes:
// Commit si fn devuelve nil, Rollback si devuelve error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		batchRepo repository.BatchLogRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// Config agrupa las constantes inyectadas del motor (ver pkg/config):
// el volumen mínimo de lote y el margen fijo de cotización.
type Config struct {
	MinVolumeBBL decimal.Decimal
	MarkupFactor decimal.Decimal
}
