package calc

import (
	"math"

	"greenwatt/internal/errors"
)

// EstimateUsage converts a monthly bill in KRW to estimated electricity
// usage in kWh by walking the progressive tier schedule. The result keeps
// full precision; callers round for display only.
//
// Negative or non-finite bills are rejected rather than clamped.
func (p Params) EstimateUsage(billKRW float64) (float64, error) {
	if math.IsNaN(billKRW) || math.IsInf(billKRW, 0) {
		return 0, errors.Input("bill must be a finite number")
	}
	if billKRW < 0 {
		return 0, errors.Inputf("bill must be non-negative, got %v", billKRW)
	}
	if len(p.UsageTiers) == 0 {
		return 0, errors.New(errors.TypeConfig, "usage tier schedule is empty")
	}

	lowerBound := 0.0
	for _, tier := range p.UsageTiers {
		if tier.WonPerKWh <= 0 {
			return 0, errors.Newf(errors.TypeConfig, "tier rate must be positive, got %v", tier.WonPerKWh)
		}
		if tier.UpToKRW == 0 || billKRW <= tier.UpToKRW {
			return tier.BaseKWh + (billKRW-lowerBound)/tier.WonPerKWh, nil
		}
		lowerBound = tier.UpToKRW
	}

	return 0, errors.New(errors.TypeConfig, "usage tier schedule has no unbounded band")
}
