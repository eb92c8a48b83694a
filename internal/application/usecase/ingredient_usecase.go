package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/dto"
	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// IngredientUseCase aplica reglas de negocio para el inventario de insumos.
// Los ajustes de stock pasan por el TxRunner para dejar el delta y su
// movimiento en el diario dentro de la misma transacción.
type IngredientUseCase struct {
	repo     repository.IngredientRepository
	txRunner brewing.TxRunner
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, txRunner brewing.TxRunner) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, txRunner: txRunner}
}

// Create valida y persiste un nuevo ingrediente. Nombre duplicado se surface
// como ErrDuplicateName para que la capa de presentación pida otro.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitCost.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.OnHandQty.IsNegative() || in.Detail.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ing := &entity.Ingredient{
		Name:      in.Name,
		Category:  in.Category,
		UnitCost:  in.UnitCost,
		Detail:    in.Detail,
		Unit:      in.Unit,
		OnHandQty: in.OnHandQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return entityToIngredientResponse(ing), nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(id int64) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return entityToIngredientResponse(ing), nil
}

// List devuelve el inventario completo ordenado por nombre.
func (uc *IngredientUseCase) List() ([]*dto.IngredientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, entityToIngredientResponse(ing))
	}
	return out, nil
}

// UpdateCost cambia el costo unitario. No afecta el base_cost almacenado de
// las recetas (solo informativo); sí afecta cotizaciones futuras.
func (uc *IngredientUseCase) UpdateCost(id int64, cost decimal.Decimal) error {
	if !cost.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateCost(id, cost)
}

// AdjustStock aplica un delta aditivo (positivo o negativo) al stock y deja
// un movimiento ADJUSTMENT en el diario, en una sola transacción. La nueva
// cantidad queda acotada en 0 por el gateway.
func (uc *IngredientUseCase) AdjustStock(ctx context.Context, id int64, delta decimal.Decimal) (*dto.StockAdjustedResponse, error) {
	if delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	txID := uuid.New().String()
	var out *dto.StockAdjustedResponse

	err := uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		_ repository.RecipeRepository,
		_ repository.BatchLogRepository,
		movRepo repository.StockMovementRepository,
	) error {
		ing, err := ingRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		newQty, err := ingRepo.AdjustStock(id, delta)
		if err != nil {
			return err
		}
		mov := &entity.StockMovement{
			TransactionID:  txID,
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Type:           entity.MovementTypeADJUSTMENT,
			Quantity:       delta,
			UnitCost:       ing.UnitCost,
			TotalCost:      delta.Mul(ing.UnitCost),
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = &dto.StockAdjustedResponse{ID: id, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un ingrediente. El gateway rechaza con ErrIngredientInUse
// si alguna composición lo referencia (restrict-on-delete).
func (uc *IngredientUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func entityToIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		UnitCost:  i.UnitCost,
		Detail:    i.Detail,
		Unit:      i.Unit,
		OnHandQty: i.OnHandQty,
		UpdatedAt: i.UpdatedAt,
	}
}
