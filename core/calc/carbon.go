package calc

import (
	"math"

	"greenwatt/internal/errors"
)

// CarbonImpact is the estimated CO2 reduction of a usage or generation
// volume, with its pine-tree equivalent.
type CarbonImpact struct {
	CO2Kg           float64 `json:"co2_kg"`
	EquivalentTrees float64 `json:"equivalent_trees"`
}

// EstimateCarbonOffset converts a kWh volume (usage or generation, same
// factor) into estimated CO2 in kg and an equivalent tree count.
func (p Params) EstimateCarbonOffset(kWh float64) (CarbonImpact, error) {
	if math.IsNaN(kWh) || math.IsInf(kWh, 0) || kWh < 0 {
		return CarbonImpact{}, errors.Inputf("energy volume must be a non-negative finite number, got %v", kWh)
	}

	co2 := kWh * p.EmissionFactorKgPerKWh
	return CarbonImpact{
		CO2Kg:           co2,
		EquivalentTrees: co2 / p.TreeAbsorptionKgPerYear,
	}, nil
}
