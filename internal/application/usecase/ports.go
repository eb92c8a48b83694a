package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

// RecipeItemDetail fila de composición con el ingrediente resuelto, para
// exportes.
type RecipeItemDetail struct {
	Ingredient *entity.Ingredient
	Quantity   decimal.Decimal
}

// BeerXMLBuilder puerto para exportar una receta como documento BeerXML 1.0.
type BeerXMLBuilder interface {
	Build(recipe *entity.Recipe, items []RecipeItemDetail) ([]byte, error)
}

// BatchReportGenerator puerto para el reporte PDF del historial de lotes.
type BatchReportGenerator interface {
	Generate(ctx context.Context, records []*entity.BatchRecord) ([]byte, error)
}
