package calc

import (
	"math"

	"greenwatt/internal/errors"
)

// GenerationInput describes an installation by capacity or by area.
// CapacityKW takes precedence when positive; otherwise AreaM2 is converted
// through the KWPerM2 coefficient. One of the two must be positive.
type GenerationInput struct {
	CapacityKW float64        `json:"capacity_kw"`
	AreaM2     float64        `json:"area_m2"`
	Mode       GenerationMode `json:"mode"`

	// SolarScore is the 0-100 regional solar score, scored mode only
	SolarScore float64 `json:"solar_score"`
}

// Generation is the estimated energy output of an installation
type Generation struct {
	CapacityKW float64 `json:"capacity_kw"`
	DailyHours float64 `json:"daily_hours"`
	DailyKWh   float64 `json:"daily_kwh"`
	MonthlyKWh float64 `json:"monthly_kwh"`
}

// EstimateGeneration converts an installation parameter into estimated
// daily and monthly generation. Generation is linear in capacity.
func (p Params) EstimateGeneration(in GenerationInput) (Generation, error) {
	capacity, err := p.resolveCapacity(in)
	if err != nil {
		return Generation{}, err
	}

	hours, err := p.dailyHours(in)
	if err != nil {
		return Generation{}, err
	}

	daily := capacity * hours
	return Generation{
		CapacityKW: capacity,
		DailyHours: hours,
		DailyKWh:   daily,
		MonthlyKWh: daily * p.DaysPerMonth,
	}, nil
}

func (p Params) resolveCapacity(in GenerationInput) (float64, error) {
	if math.IsNaN(in.CapacityKW) || math.IsInf(in.CapacityKW, 0) ||
		math.IsNaN(in.AreaM2) || math.IsInf(in.AreaM2, 0) {
		return 0, errors.Input("installation parameter must be a finite number")
	}
	if in.CapacityKW < 0 {
		return 0, errors.Inputf("capacity must be positive, got %v kW", in.CapacityKW)
	}
	if in.CapacityKW > 0 {
		return in.CapacityKW, nil
	}
	if in.AreaM2 > 0 {
		return in.AreaM2 * p.KWPerM2, nil
	}
	return 0, errors.Input("either capacity_kw or area_m2 must be positive")
}

func (p Params) dailyHours(in GenerationInput) (float64, error) {
	switch in.Mode {
	case ModeFixedHours, "":
		return p.FixedDailyHours, nil
	case ModeScoredHours:
		if math.IsNaN(in.SolarScore) || in.SolarScore < 0 || in.SolarScore > 100 {
			return 0, errors.Inputf("solar score must be within [0,100], got %v", in.SolarScore)
		}
		return p.BaseDailyHours + in.SolarScore/100, nil
	default:
		return 0, errors.Inputf("unknown generation mode %q", in.Mode)
	}
}
