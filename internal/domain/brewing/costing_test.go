package brewing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/brewing"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

func costos(m map[int64]string) brewing.UnitCostFn {
	return func(id int64) (decimal.Decimal, error) {
		s, ok := m[id]
		if !ok {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.RequireFromString(s), nil
	}
}

func TestTotalCost_ListaVacia(t *testing.T) {
	total, err := brewing.TotalCost(nil, costos(nil))
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "lista vacía debe costar 0")
}

func TestTotalCost_Agrega(t *testing.T) {
	items := []entity.BatchItem{
		{IngredientID: 1, Quantity: decimal.NewFromInt(600)}, // 600 x 1.00
		{IngredientID: 2, Quantity: decimal.NewFromInt(15)},  // 15 x 0.50
		{IngredientID: 3, Quantity: decimal.NewFromInt(4)},   // 4 x 5.50
	}
	total, err := brewing.TotalCost(items, costos(map[int64]string{
		1: "1.00", 2: "0.50", 3: "5.50",
	}))
	require.NoError(t, err)
	assert.Equal(t, "629.50", total.StringFixed(2))
}

func TestTotalCost_IndependienteDelOrden(t *testing.T) {
	fn := costos(map[int64]string{1: "1.10", 2: "0.45"})
	a := []entity.BatchItem{
		{IngredientID: 1, Quantity: decimal.NewFromInt(550)},
		{IngredientID: 2, Quantity: decimal.NewFromInt(5)},
	}
	b := []entity.BatchItem{a[1], a[0]}

	totalA, err := brewing.TotalCost(a, fn)
	require.NoError(t, err)
	totalB, err := brewing.TotalCost(b, fn)
	require.NoError(t, err)
	assert.True(t, totalA.Equal(totalB), "el orden de la lista no debe cambiar el total")
}

func TestTotalCost_PropagaError(t *testing.T) {
	items := []entity.BatchItem{{IngredientID: 99, Quantity: decimal.NewFromInt(1)}}
	_, err := brewing.TotalCost(items, costos(nil))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotedPrice_AplicaMargen(t *testing.T) {
	// 600 x 1.00 con margen 1.15 => 690
	quoted := brewing.QuotedPrice(decimal.NewFromInt(600), decimal.RequireFromString("1.15"))
	assert.Equal(t, "690.00", quoted.StringFixed(2))
}
