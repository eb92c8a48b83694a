package brewing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
	domainbrew "github.com/jhoicas/brewme-api/internal/domain/brewing"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// CostEstimator calcula el costo total de una lista escalada. El costo
// unitario se resuelve contra el gateway en el momento de la llamada, no con
// un snapshot tomado al escalar: un cambio de costo entre la vista previa y
// la confirmación se refleja en la cotización final (decisión deliberada,
// ver DESIGN.md).
type CostEstimator struct {
	ingRepo repository.IngredientRepository
	cfg     Config
}

// NewCostEstimator construye el estimador.
func NewCostEstimator(ingRepo repository.IngredientRepository, cfg Config) *CostEstimator {
	return &CostEstimator{ingRepo: ingRepo, cfg: cfg}
}

// TotalCost agrega costo unitario vigente × cantidad sobre la lista escalada.
func (e *CostEstimator) TotalCost(ctx context.Context, items []entity.BatchItem) (decimal.Decimal, error) {
	return domainbrew.TotalCost(items, e.lookupUnitCost)
}

// Quote aplica el margen configurado al costo crudo.
func (e *CostEstimator) Quote(totalCost decimal.Decimal) decimal.Decimal {
	return domainbrew.QuotedPrice(totalCost, e.cfg.MarkupFactor)
}

func (e *CostEstimator) lookupUnitCost(ingredientID int64) (decimal.Decimal, error) {
	ing, err := e.ingRepo.GetByID(ingredientID)
	if err != nil {
		return decimal.Zero, err
	}
	if ing == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return ing.UnitCost, nil
}
