package memory

import (
	"context"

	"github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// Ensure TxRunner implements brewing.TxRunner.
var _ brewing.TxRunner = (*TxRunner)(nil)

// TxRunner imita la semántica transaccional: toma una copia del estado antes
// de ejecutar fn y la repone si fn falla. Suficiente para tests de casos de
// uso all-or-nothing.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos atados al Store; si fn devuelve error, repone el
// estado previo (rollback).
func (r *TxRunner) Run(_ context.Context, fn func(
	ingRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	batchRepo repository.BatchLogRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	before := r.s.snapshot()

	err := fn(
		NewIngredientRepository(r.s),
		NewRecipeRepository(r.s),
		NewBatchLogRepository(r.s),
		NewStockMovementRepository(r.s),
	)
	if err != nil {
		r.s.restore(before)
		return err
	}
	return nil
}
