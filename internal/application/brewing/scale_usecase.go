package brewing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
	domainbrew "github.com/jhoicas/brewme-api/internal/domain/brewing"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// ScaleRecipeUseCase escala la composición de una receta al volumen objetivo.
type ScaleRecipeUseCase struct {
	recipeRepo repository.RecipeRepository
	ingRepo    repository.IngredientRepository
	cfg        Config
}

// NewScaleRecipeUseCase construye el caso de uso.
func NewScaleRecipeUseCase(recipeRepo repository.RecipeRepository, ingRepo repository.IngredientRepository, cfg Config) *ScaleRecipeUseCase {
	return &ScaleRecipeUseCase{recipeRepo: recipeRepo, ingRepo: ingRepo, cfg: cfg}
}

// ScaledRecipe es el resultado del escalado: el factor aplicado y el
// requerimiento de cada ingrediente al volumen objetivo.
type ScaledRecipe struct {
	Recipe      *entity.Recipe
	TargetBBL   decimal.Decimal
	ScaleFactor decimal.Decimal
	Items       []entity.BatchItem
}

// Scale valida los volúmenes contra el mínimo configurado, calcula el factor
// objetivo/base y multiplica cada cantidad de la composición. Nombre y unidad
// de cada ingrediente se resuelven contra el gateway en este momento (no se
// cachean). Sin efectos secundarios; el orden de salida sigue la composición.
func (uc *ScaleRecipeUseCase) Scale(ctx context.Context, recipeID int64, targetVolume decimal.Decimal) (*ScaledRecipe, error) {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}

	factor, err := domainbrew.ScaleFactor(recipe.BaseVolume, targetVolume, uc.cfg.MinVolumeBBL)
	if err != nil {
		return nil, err
	}

	comp, err := uc.recipeRepo.GetComposition(recipeID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.BatchItem, 0, len(comp))
	for _, row := range comp {
		ing, err := uc.ingRepo.GetByID(row.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.BatchItem{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Unit:         ing.Unit,
			Quantity:     domainbrew.ScaleQuantity(row.Quantity, factor),
		})
	}

	return &ScaledRecipe{Recipe: recipe, TargetBBL: targetVolume, ScaleFactor: factor, Items: items}, nil
}
