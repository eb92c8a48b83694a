package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/dto"
	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// RecipeUseCase gestiona el catálogo de recetas. La creación corre dentro
// del TxRunner: cabecera, composición y costo base calculado con los costos
// unitarios vigentes quedan en una sola transacción.
type RecipeUseCase struct {
	recipeRepo repository.RecipeRepository
	ingRepo    repository.IngredientRepository
	txRunner   appbrew.TxRunner
	xmlBuilder BeerXMLBuilder
	cfg        appbrew.Config
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(
	recipeRepo repository.RecipeRepository,
	ingRepo repository.IngredientRepository,
	txRunner appbrew.TxRunner,
	xmlBuilder BeerXMLBuilder,
	cfg appbrew.Config,
) *RecipeUseCase {
	return &RecipeUseCase{
		recipeRepo: recipeRepo,
		ingRepo:    ingRepo,
		txRunner:   txRunner,
		xmlBuilder: xmlBuilder,
		cfg:        cfg,
	}
}

// Create registra una receta con su composición. El costo base se fija al
// momento de la creación con los costos unitarios vigentes; cotizaciones
// posteriores lo recalculan, este valor es solo informativo.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if !in.BaseVolumeBBL.GreaterThan(uc.cfg.MinVolumeBBL) {
		return nil, domain.ErrInvalidVolume
	}
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.RecipeResponse
	err := uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		_ repository.BatchLogRepository,
		_ repository.StockMovementRepository,
	) error {
		baseCost := decimal.Zero
		for _, it := range in.Items {
			ing, err := ingRepo.GetByID(it.IngredientID)
			if err != nil {
				return err
			}
			if ing == nil {
				return domain.ErrNotFound
			}
			baseCost = baseCost.Add(it.Quantity.Mul(ing.UnitCost))
		}

		recipe := &entity.Recipe{
			Name:       in.Name,
			BaseVolume: in.BaseVolumeBBL,
			BaseCost:   baseCost,
			CreatedAt:  time.Now(),
		}
		if err := recipeRepo.Create(recipe); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.RecipeItem{
				RecipeID:     recipe.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
			}
			if err := recipeRepo.AddItem(item); err != nil {
				return err
			}
		}
		out = entityToRecipeResponse(recipe)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve la receta con su composición resuelta (nombre y unidad
// de cada ingrediente).
func (uc *RecipeUseCase) GetByID(id int64) (*dto.RecipeDetailResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.composition(id)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecipeDetailResponse{
		RecipeResponse: *entityToRecipeResponse(recipe),
		Items:          make([]dto.RecipeItemResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Items = append(resp.Items, dto.RecipeItemResponse{
			IngredientID: d.Ingredient.ID,
			Name:         d.Ingredient.Name,
			Unit:         d.Ingredient.Unit,
			Quantity:     d.Quantity,
		})
	}
	return resp, nil
}

// List devuelve el catálogo de recetas.
func (uc *RecipeUseCase) List() ([]*dto.RecipeResponse, error) {
	list, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, entityToRecipeResponse(r))
	}
	return out, nil
}

// Delete elimina la receta; su composición cae en cascada. El historial de
// lotes no se toca: guarda el nombre de la receta, no una referencia.
func (uc *RecipeUseCase) Delete(id int64) error {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	return uc.recipeRepo.Delete(id)
}

// ExportBeerXML serializa la receta como documento BeerXML 1.0.
func (uc *RecipeUseCase) ExportBeerXML(id int64) ([]byte, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.composition(id)
	if err != nil {
		return nil, err
	}
	return uc.xmlBuilder.Build(recipe, details)
}

// composition resuelve cada fila de composición contra su ingrediente.
func (uc *RecipeUseCase) composition(recipeID int64) ([]RecipeItemDetail, error) {
	items, err := uc.recipeRepo.GetComposition(recipeID)
	if err != nil {
		return nil, err
	}
	details := make([]RecipeItemDetail, 0, len(items))
	for _, it := range items {
		ing, err := uc.ingRepo.GetByID(it.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		details = append(details, RecipeItemDetail{Ingredient: ing, Quantity: it.Quantity})
	}
	return details, nil
}

func entityToRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	return &dto.RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		BaseVolumeBBL: r.BaseVolume,
		BaseCost:      r.BaseCost,
		CreatedAt:     r.CreatedAt,
	}
}
