package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwatt/internal/errors"
)

func TestEstimateCarbonOffset(t *testing.T) {
	p := DefaultParams()

	impact, err := p.EstimateCarbonOffset(321.5)
	require.NoError(t, err)
	assert.InDelta(t, 321.5*0.4781, impact.CO2Kg, 1e-9)
	assert.InDelta(t, 321.5*0.4781/6.6, impact.EquivalentTrees, 1e-9)
	// spot figures from the dashboard: ~153.7 kg, ~23.3 trees
	assert.InDelta(t, 153.7, impact.CO2Kg, 0.1)
	assert.InDelta(t, 23.3, impact.EquivalentTrees, 0.1)
}

func TestEstimateCarbonOffsetAlternateFactor(t *testing.T) {
	p := DefaultParams()
	p.EmissionFactorKgPerKWh = 0.44

	impact, err := p.EstimateCarbonOffset(1000)
	require.NoError(t, err)
	assert.InDelta(t, 440.0, impact.CO2Kg, 1e-9)
}

func TestEstimateCarbonOffsetRejectsBadInput(t *testing.T) {
	p := DefaultParams()

	for _, kwh := range []float64{-1, math.NaN(), math.Inf(-1)} {
		_, err := p.EstimateCarbonOffset(kwh)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}
