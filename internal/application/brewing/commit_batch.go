package brewing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// CommitBatchUseCase confirma un lote: valida stock, lo consume y registra la
// entrada en el historial, todo dentro de una sola transacción.
type CommitBatchUseCase struct {
	txRunner TxRunner
}

// NewCommitBatchUseCase construye el caso de uso.
func NewCommitBatchUseCase(txRunner TxRunner) *CommitBatchUseCase {
	return &CommitBatchUseCase{txRunner: txRunner}
}

// CommitInput es la entrada para confirmar un lote. Items viene del motor de
// escalado; el caso de uso confía en su forma y no vuelve a consultar la
// composición de la receta.
type CommitInput struct {
	RecipeName string
	VolumeBBL  decimal.Decimal
	FinalCost  decimal.Decimal
	Items      []entity.BatchItem
}

// Confirmation es el resultado de un commit exitoso.
type Confirmation struct {
	BatchID       int64
	TransactionID string
	BrewedAt      time.Time
}

// Commit ejecuta las dos fases dentro de una transacción.
//
// Fase 1: bloquea la fila de cada ingrediente (SELECT FOR UPDATE) y verifica
// el disponible en el orden recibido; el primer faltante aborta con
// InsufficientStockError y Rollback, sin mutación observable. Validar dentro
// de la transacción y sobre filas bloqueadas cierra la ventana
// check-then-use entre vista previa y confirmación.
//
// Fase 2: descuenta cada ingrediente exactamente su cantidad requerida (el
// piso en 0 del gateway queda como invariante defensivo, no-op tras la
// validación), registra un movimiento de consumo por ingrediente con el
// mismo TransactionID y agrega exactamente una entrada al historial.
func (uc *CommitBatchUseCase) Commit(ctx context.Context, input CommitInput) (*Confirmation, error) {
	if input.RecipeName == "" || len(input.Items) == 0 || !input.VolumeBBL.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	var confirmation *Confirmation

	err := uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		_ repository.RecipeRepository,
		batchRepo repository.BatchLogRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Fase 1: validación con bloqueo de fila.
		type lockedItem struct {
			ing  *entity.Ingredient
			need decimal.Decimal
		}
		locked := make([]lockedItem, 0, len(input.Items))
		for _, item := range input.Items {
			ing, err := ingRepo.GetForUpdate(item.IngredientID)
			if err != nil {
				return err
			}
			if ing == nil {
				return domain.ErrNotFound
			}
			if ing.OnHandQty.LessThan(item.Quantity) {
				return &domain.InsufficientStockError{
					IngredientID: ing.ID,
					Name:         ing.Name,
					Needed:       item.Quantity,
					Available:    ing.OnHandQty,
				}
			}
			locked = append(locked, lockedItem{ing: ing, need: item.Quantity})
		}

		// Fase 2: descuentos y diario de consumo.
		for _, li := range locked {
			if _, err := ingRepo.AdjustStock(li.ing.ID, li.need.Neg()); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				TransactionID:  txID,
				IngredientID:   li.ing.ID,
				IngredientName: li.ing.Name,
				Type:           entity.MovementTypeCONSUMPTION,
				Quantity:       li.need.Neg(),
				UnitCost:       li.ing.UnitCost,
				TotalCost:      li.need.Neg().Mul(li.ing.UnitCost),
				CreatedAt:      now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		rec := &entity.BatchRecord{
			RecipeName: input.RecipeName,
			VolumeBBL:  input.VolumeBBL,
			FinalCost:  input.FinalCost,
			BrewedAt:   now,
		}
		id, err := batchRepo.Append(rec)
		if err != nil {
			return err
		}
		confirmation = &Confirmation{BatchID: id, TransactionID: txID, BrewedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}
