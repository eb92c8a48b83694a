package brewing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testCfg = appbrew.Config{
	MinVolumeBBL: decimal.RequireFromString("0.5"),
	MarkupFactor: decimal.RequireFromString("1.15"),
}

type fixture struct {
	store    *memory.Store
	ingRepo  *memory.IngredientRepo
	recRepo  *memory.RecipeRepo
	batchs   *memory.BatchLogRepo
	movs     *memory.StockMovementRepo
	txRunner *memory.TxRunner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		store:    store,
		ingRepo:  memory.NewIngredientRepository(store),
		recRepo:  memory.NewRecipeRepository(store),
		batchs:   memory.NewBatchLogRepository(store),
		movs:     memory.NewStockMovementRepository(store),
		txRunner: memory.NewTxRunner(store),
	}
}

// seedIngredient crea un ingrediente con costo y stock dados.
func (f *fixture) seedIngredient(t *testing.T, name, cost, qty string) int64 {
	t.Helper()
	ing := &entity.Ingredient{
		Name:      name,
		Category:  entity.CategoryFermentable,
		UnitCost:  decimal.RequireFromString(cost),
		Unit:      "lb",
		OnHandQty: decimal.RequireFromString(qty),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, f.ingRepo.Create(ing))
	return ing.ID
}

// seedRecipe crea una receta de 15 BBL con la composición dada.
func (f *fixture) seedRecipe(t *testing.T, name string, items map[int64]string) int64 {
	t.Helper()
	rec := &entity.Recipe{
		Name:       name,
		BaseVolume: decimal.NewFromInt(15),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, f.recRepo.Create(rec))
	for id, qty := range items {
		require.NoError(t, f.recRepo.AddItem(&entity.RecipeItem{
			RecipeID:     rec.ID,
			IngredientID: id,
			Quantity:     decimal.RequireFromString(qty),
		}))
	}
	return rec.ID
}

func (f *fixture) onHand(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	ing, err := f.ingRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, ing)
	return ing.OnHandQty
}

// ──────────────────────────────────────────────────────────────────────────────
// Escalado
// ──────────────────────────────────────────────────────────────────────────────

func TestScale_DuplicaCantidades(t *testing.T) {
	f := newFixture(t)
	maltID := f.seedIngredient(t, "Pilsner Malt", "1.00", "2000")
	hopID := f.seedIngredient(t, "Saaz Hops", "0.50", "100")
	recipeID := f.seedRecipe(t, "Bohemian Pilsner", map[int64]string{
		maltID: "600", hopID: "15",
	})

	uc := appbrew.NewScaleRecipeUseCase(f.recRepo, f.ingRepo, testCfg)
	scaled, err := uc.Scale(context.Background(), recipeID, decimal.NewFromInt(30))
	require.NoError(t, err)

	assert.True(t, scaled.ScaleFactor.Equal(decimal.NewFromInt(2)))
	require.Len(t, scaled.Items, 2)
	// La composición sale ordenada por ingrediente
	assert.Equal(t, "Pilsner Malt", scaled.Items[0].Name)
	assert.True(t, scaled.Items[0].Quantity.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "Saaz Hops", scaled.Items[1].Name)
	assert.True(t, scaled.Items[1].Quantity.Equal(decimal.NewFromInt(30)))
}

func TestScale_VolumenInvalido(t *testing.T) {
	f := newFixture(t)
	maltID := f.seedIngredient(t, "Pale Malt", "1.10", "100")
	recipeID := f.seedRecipe(t, "American Lager", map[int64]string{maltID: "550"})

	uc := appbrew.NewScaleRecipeUseCase(f.recRepo, f.ingRepo, testCfg)
	_, err := uc.Scale(context.Background(), recipeID, decimal.RequireFromString("0.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidVolume)
}

func TestScale_RecetaInexistente(t *testing.T) {
	f := newFixture(t)
	uc := appbrew.NewScaleRecipeUseCase(f.recRepo, f.ingRepo, testCfg)
	_, err := uc.Scale(context.Background(), 99, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Costeo
// ──────────────────────────────────────────────────────────────────────────────

func TestCostEstimator_CostoVigente(t *testing.T) {
	f := newFixture(t)
	maltID := f.seedIngredient(t, "Pilsner Malt", "1.00", "2000")

	est := appbrew.NewCostEstimator(f.ingRepo, testCfg)
	items := []entity.BatchItem{{IngredientID: maltID, Quantity: decimal.NewFromInt(600)}}

	total, err := est.TotalCost(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "600.00", total.StringFixed(2))
	assert.Equal(t, "690.00", est.Quote(total).StringFixed(2))

	// Un cambio de costo entre vista previa y confirmación se refleja en la
	// siguiente llamada: el costo se resuelve al momento, no con snapshot.
	require.NoError(t, f.ingRepo.UpdateCost(maltID, decimal.RequireFromString("2.00")))
	total, err = est.TotalCost(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "1200.00", total.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmación de lote
// ──────────────────────────────────────────────────────────────────────────────

func TestCommit_DescuentaYRegistra(t *testing.T) {
	f := newFixture(t)
	maltID := f.seedIngredient(t, "Pilsner Malt", "1.00", "1500")
	hopID := f.seedIngredient(t, "Saaz Hops", "0.50", "40")

	uc := appbrew.NewCommitBatchUseCase(f.txRunner)
	conf, err := uc.Commit(context.Background(), appbrew.CommitInput{
		RecipeName: "Bohemian Pilsner",
		VolumeBBL:  decimal.NewFromInt(30),
		FinalCost:  decimal.RequireFromString("1397.25"),
		Items: []entity.BatchItem{
			{IngredientID: maltID, Name: "Pilsner Malt", Quantity: decimal.NewFromInt(1200)},
			{IngredientID: hopID, Name: "Saaz Hops", Quantity: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, conf)
	assert.NotEmpty(t, conf.TransactionID)

	// Descuentos exactos
	assert.Equal(t, "300", f.onHand(t, maltID).String())
	assert.Equal(t, "10", f.onHand(t, hopID).String())

	// Exactamente una entrada en el historial
	log, err := f.batchs.List()
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, conf.BatchID, log[0].ID)
	assert.Equal(t, "Bohemian Pilsner", log[0].RecipeName)
	assert.Equal(t, "1397.25", log[0].FinalCost.StringFixed(2))

	// Un movimiento de consumo por ingrediente, mismo TransactionID
	movs, err := f.movs.ListByIngredient(maltID, 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeCONSUMPTION, movs[0].Type)
	assert.Equal(t, conf.TransactionID, movs[0].TransactionID)
	assert.Equal(t, "-1200", movs[0].Quantity.String())

	movs, err = f.movs.ListByIngredient(hopID, 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, conf.TransactionID, movs[0].TransactionID)
}

func TestCommit_FaltanteAbortaSinDescontar(t *testing.T) {
	f := newFixture(t)
	// El primero alcanza, el segundo no: nada debe descontarse.
	maltID := f.seedIngredient(t, "Pale Malt", "1.10", "2000")
	hopID := f.seedIngredient(t, "Citra Hops", "0.60", "500")

	uc := appbrew.NewCommitBatchUseCase(f.txRunner)
	_, err := uc.Commit(context.Background(), appbrew.CommitInput{
		RecipeName: "IPA",
		VolumeBBL:  decimal.NewFromInt(30),
		FinalCost:  decimal.NewFromInt(1000),
		Items: []entity.BatchItem{
			{IngredientID: maltID, Name: "Pale Malt", Quantity: decimal.NewFromInt(1500)},
			{IngredientID: hopID, Name: "Citra Hops", Quantity: decimal.NewFromInt(600)},
		},
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr, "debe reportar el faltante con detalle")
	assert.Equal(t, "Citra Hops", stockErr.Name)
	assert.Equal(t, "600", stockErr.Needed.String())
	assert.Equal(t, "500", stockErr.Available.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Sin mutación observable: ni stock ni historial ni diario
	assert.Equal(t, "2000", f.onHand(t, maltID).String())
	assert.Equal(t, "500", f.onHand(t, hopID).String())

	log, err := f.batchs.List()
	require.NoError(t, err)
	assert.Empty(t, log)

	movs, err := f.movs.ListByIngredient(maltID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestCommit_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	uc := appbrew.NewCommitBatchUseCase(f.txRunner)

	_, err := uc.Commit(context.Background(), appbrew.CommitInput{
		RecipeName: "",
		VolumeBBL:  decimal.NewFromInt(10),
		Items:      []entity.BatchItem{{IngredientID: 1, Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Commit(context.Background(), appbrew.CommitInput{
		RecipeName: "IPA",
		VolumeBBL:  decimal.NewFromInt(10),
		Items:      nil,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
