package brewing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/brewing"
)

var minVolume = decimal.RequireFromString("0.5")

func TestScaleFactor_Duplica(t *testing.T) {
	factor, err := brewing.ScaleFactor(
		decimal.NewFromInt(15), decimal.NewFromInt(30), minVolume)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(2)), "30/15 debe dar factor 2, dio %s", factor)
}

func TestScaleFactor_Identidad(t *testing.T) {
	factor, err := brewing.ScaleFactor(
		decimal.NewFromInt(15), decimal.NewFromInt(15), minVolume)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)), "mismo volumen debe dar factor 1")
}

func TestScaleFactor_Reduce(t *testing.T) {
	factor, err := brewing.ScaleFactor(
		decimal.NewFromInt(15), decimal.RequireFromString("7.5"), minVolume)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.RequireFromString("0.5")))
}

func TestScaleFactor_VolumenObjetivoInvalido(t *testing.T) {
	casos := []string{"0", "0.5", "-3"}
	for _, target := range casos {
		_, err := brewing.ScaleFactor(
			decimal.NewFromInt(15), decimal.RequireFromString(target), minVolume)
		assert.ErrorIs(t, err, domain.ErrInvalidVolume, "objetivo %s debe rechazarse", target)
	}
}

func TestScaleFactor_VolumenBaseInvalido(t *testing.T) {
	_, err := brewing.ScaleFactor(
		decimal.RequireFromString("0.5"), decimal.NewFromInt(15), minVolume)
	assert.ErrorIs(t, err, domain.ErrInvalidVolume, "base igual al mínimo debe rechazarse")
}

func TestScaleQuantity_Proporcional(t *testing.T) {
	// 600 lb a factor 2.0 => 1200 lb
	got := brewing.ScaleQuantity(decimal.NewFromInt(600), decimal.NewFromInt(2))
	assert.True(t, got.Equal(decimal.NewFromInt(1200)))

	// Factores fraccionarios no pierden precisión decimal
	got = brewing.ScaleQuantity(decimal.NewFromInt(15), decimal.RequireFromString("1.5"))
	assert.True(t, got.Equal(decimal.RequireFromString("22.5")))
}
