package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/usecase"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/infrastructure/beerxml"
	"github.com/jhoicas/brewme-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/brewme-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/brewme-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testCfg = appbrew.Config{
	MinVolumeBBL: decimal.RequireFromString("0.5"),
	MarkupFactor: decimal.RequireFromString("1.15"),
}

// buildTestApp arma la app completa sobre el backend en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ingRepo := memory.NewIngredientRepository(store)
	recRepo := memory.NewRecipeRepository(store)
	batchRepo := memory.NewBatchLogRepository(store)
	movRepo := memory.NewStockMovementRepository(store)
	txRunner := memory.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		IngredientUC: usecase.NewIngredientUseCase(ingRepo, txRunner),
		MovementUC:   usecase.NewMovementHistoryUseCase(movRepo),
		RecipeUC:     usecase.NewRecipeUseCase(recRepo, ingRepo, txRunner, beerxml.NewBuilder(), testCfg),
		BatchLogUC:   usecase.NewBatchLogUseCase(batchRepo, infrapdf.NewMarotoPDFGenerator()),
		ScaleUC:      appbrew.NewScaleRecipeUseCase(recRepo, ingRepo, testCfg),
		CostUC:       appbrew.NewCostEstimator(ingRepo, testCfg),
		CommitUC:     appbrew.NewCommitBatchUseCase(txRunner),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seedInventory siembra un ingrediente directo en el store y devuelve su ID.
func seedInventory(t *testing.T, store *memory.Store, name, cost, qty string) int64 {
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
	require.NoError(t, memory.NewIngredientRepository(store).Create(ing))
	return ing.ID
}

func seedRecipe(t *testing.T, store *memory.Store, name string, items map[int64]string) int64 {
	t.Helper()
	repo := memory.NewRecipeRepository(store)
	rec := &entity.Recipe{Name: name, BaseVolume: decimal.NewFromInt(15), CreatedAt: time.Now()}
	require.NoError(t, repo.Create(rec))
	for id, qty := range items {
		require.NoError(t, repo.AddItem(&entity.RecipeItem{
			RecipeID: rec.ID, IngredientID: id, Quantity: decimal.RequireFromString(qty),
		}))
	}
	return rec.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes
// ──────────────────────────────────────────────────────────────────────────────

func TestPostIngredients_Crea(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ingredients", fiber.Map{
		"name": "Pilsner Malt", "category": "FERMENTABLE",
		"unit_cost": "1.00", "detail": "2.0", "unit": "lb", "on_hand_qty": "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, "Pilsner Malt", out["name"])
}

func TestPostIngredients_CategoriaInvalida(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ingredients", fiber.Map{
		"name": "X", "category": "MALTA", "unit_cost": "1.00", "unit": "lb",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteIngredient_EnUso(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pale Malt", "1.10", "100")
	seedRecipe(t, store, "IPA", map[int64]string{maltID: "750"})

	resp := doJSON(t, app, http.MethodDelete, "/api/ingredients/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

func TestPostScale_VistaPrevia(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pilsner Malt", "1.00", "2000")
	recipeID := seedRecipe(t, store, "Bohemian Pilsner", map[int64]string{maltID: "600"})

	resp := doJSON(t, app, http.MethodPost, "/api/brewing/scale", fiber.Map{
		"recipe_id": recipeID, "target_volume_bbl": "30",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		ScaleFactor decimal.Decimal `json:"scale_factor"`
		TotalCost   decimal.Decimal `json:"total_cost"`
		QuotedPrice decimal.Decimal `json:"quoted_price"`
		Items       []struct {
			Quantity decimal.Decimal `json:"quantity"`
		} `json:"items"`
	}
	decodeBody(t, resp, &out)
	assert.True(t, out.ScaleFactor.Equal(decimal.NewFromInt(2)))
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Quantity.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "1200.00", out.TotalCost.StringFixed(2))
	assert.Equal(t, "1380.00", out.QuotedPrice.StringFixed(2))

	// La vista previa no toca inventario
	ing, err := memory.NewIngredientRepository(store).GetByID(maltID)
	require.NoError(t, err)
	assert.Equal(t, "2000", ing.OnHandQty.String())
}

func TestPostScale_VolumenInvalido(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pale Malt", "1.10", "100")
	recipeID := seedRecipe(t, store, "Lager", map[int64]string{maltID: "550"})

	resp := doJSON(t, app, http.MethodPost, "/api/brewing/scale", fiber.Map{
		"recipe_id": recipeID, "target_volume_bbl": "0.5",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostBatches_ConfirmaYDescuenta(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pilsner Malt", "1.00", "1500")
	recipeID := seedRecipe(t, store, "Bohemian Pilsner", map[int64]string{maltID: "600"})

	resp := doJSON(t, app, http.MethodPost, "/api/brewing/batches", fiber.Map{
		"recipe_id": recipeID, "target_volume_bbl": "30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		BatchID       int64           `json:"batch_id"`
		TransactionID string          `json:"transaction_id"`
		FinalCost     decimal.Decimal `json:"final_cost"`
	}
	decodeBody(t, resp, &out)
	assert.NotZero(t, out.BatchID)
	assert.NotEmpty(t, out.TransactionID)
	// 1200 x 1.00 x 1.15
	assert.Equal(t, "1380.00", out.FinalCost.StringFixed(2))

	ing, err := memory.NewIngredientRepository(store).GetByID(maltID)
	require.NoError(t, err)
	assert.Equal(t, "300", ing.OnHandQty.String())
}

func TestPostBatches_StockInsuficiente(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pilsner Malt", "1.00", "500")
	recipeID := seedRecipe(t, store, "Bohemian Pilsner", map[int64]string{maltID: "600"})

	// 15 -> 15 requiere 600 lb y solo hay 500
	resp := doJSON(t, app, http.MethodPost, "/api/brewing/batches", fiber.Map{
		"recipe_id": recipeID, "target_volume_bbl": "15",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var out struct {
		Code       string          `json:"code"`
		Ingredient string          `json:"ingredient"`
		Needed     decimal.Decimal `json:"needed"`
		Available  decimal.Decimal `json:"available"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, "Pilsner Malt", out.Ingredient)
	assert.Equal(t, "600", out.Needed.String())
	assert.Equal(t, "500", out.Available.String())

	// Sin descuentos ni entrada en el historial
	ing, err := memory.NewIngredientRepository(store).GetByID(maltID)
	require.NoError(t, err)
	assert.Equal(t, "500", ing.OnHandQty.String())

	log, err := memory.NewBatchLogRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBatchesExport_CSV(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pilsner Malt", "1.00", "1500")
	recipeID := seedRecipe(t, store, "Bohemian Pilsner", map[int64]string{maltID: "600"})

	resp := doJSON(t, app, http.MethodPost, "/api/brewing/batches", fiber.Map{
		"recipe_id": recipeID, "target_volume_bbl": "15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/batches/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "Batch ID,Recipe Name,Volume (BBL),Final Cost ($),Date Brewed")
	assert.Contains(t, string(body), "Bohemian Pilsner")
}

func TestGetRecipeBeerXML(t *testing.T) {
	app, store := buildTestApp(t)
	maltID := seedInventory(t, store, "Pilsner Malt", "1.00", "100")
	recipeID := seedRecipe(t, store, "Bohemian Pilsner", map[int64]string{maltID: "600"})
	_ = recipeID

	resp := doJSON(t, app, http.MethodGet, "/api/recipes/1/beerxml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "<NAME>Bohemian Pilsner</NAME>")
}
