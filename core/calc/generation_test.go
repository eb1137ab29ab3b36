package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwatt/internal/errors"
)

func TestEstimateGenerationFixedHours(t *testing.T) {
	p := DefaultParams()

	gen, err := p.EstimateGeneration(GenerationInput{CapacityKW: 100, Mode: ModeFixedHours})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, gen.CapacityKW, 1e-9)
	assert.InDelta(t, 3.6, gen.DailyHours, 1e-9)
	assert.InDelta(t, 360.0, gen.DailyKWh, 1e-9)
	assert.InDelta(t, 10800.0, gen.MonthlyKWh, 1e-9)
}

func TestEstimateGenerationLinearInCapacity(t *testing.T) {
	p := DefaultParams()

	one, err := p.EstimateGeneration(GenerationInput{CapacityKW: 37.5})
	require.NoError(t, err)
	two, err := p.EstimateGeneration(GenerationInput{CapacityKW: 75})
	require.NoError(t, err)
	assert.InDelta(t, 2*one.DailyKWh, two.DailyKWh, 1e-9)
	assert.InDelta(t, 2*one.MonthlyKWh, two.MonthlyKWh, 1e-9)
}

func TestEstimateGenerationScoredHours(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		score     float64
		wantHours float64
	}{
		{0, 3.0},
		{50, 3.5},
		{100, 4.0},
	}

	for _, tt := range tests {
		gen, err := p.EstimateGeneration(GenerationInput{CapacityKW: 10, Mode: ModeScoredHours, SolarScore: tt.score})
		require.NoError(t, err)
		assert.InDelta(t, tt.wantHours, gen.DailyHours, 1e-9, "score %v", tt.score)
		assert.InDelta(t, 10*tt.wantHours, gen.DailyKWh, 1e-9)
	}
}

func TestEstimateGenerationScoreOutOfRange(t *testing.T) {
	p := DefaultParams()

	for _, score := range []float64{-0.1, 100.1, 500} {
		_, err := p.EstimateGeneration(GenerationInput{CapacityKW: 10, Mode: ModeScoredHours, SolarScore: score})
		require.Error(t, err, "score %v", score)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}

func TestEstimateGenerationAreaCapacityRoundTrip(t *testing.T) {
	p := DefaultParams()
	const area = 240.0

	byArea, err := p.EstimateGeneration(GenerationInput{AreaM2: area})
	require.NoError(t, err)
	byCapacity, err := p.EstimateGeneration(GenerationInput{CapacityKW: area * p.KWPerM2})
	require.NoError(t, err)
	assert.InDelta(t, byCapacity.DailyKWh, byArea.DailyKWh, 1e-9)
	assert.InDelta(t, byCapacity.MonthlyKWh, byArea.MonthlyKWh, 1e-9)
}

func TestEstimateGenerationRejectsMissingParameter(t *testing.T) {
	p := DefaultParams()

	for _, in := range []GenerationInput{
		{},
		{CapacityKW: -5},
		{AreaM2: -100},
		{CapacityKW: 10, Mode: "solar-punk"},
	} {
		_, err := p.EstimateGeneration(in)
		require.Error(t, err, "%+v", in)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}
