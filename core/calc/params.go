// Package calc implements the renewable-energy investment calculation core:
// bill-based usage estimation, solar generation estimation, revenue and
// payback projection, carbon offset estimation, and multi-year projection.
//
// All functions are pure and synchronous. Every numeric constant is carried
// in Params so call sites select divergent presets explicitly instead of
// silently hard-coding their own values. Results keep full precision;
// rounding and display scaling belong to the presentation edge.
package calc

// UsageTier is one band of the progressive residential rate schedule.
// A bill inside the band maps to BaseKWh plus the marginal usage bought
// by the amount above the previous band's bound.
type UsageTier struct {
	// UpToKRW is the inclusive upper bill bound of the band (0 = unbounded)
	UpToKRW float64

	// BaseKWh is the usage accumulated by all lower bands
	BaseKWh float64

	// WonPerKWh is the marginal rate inside the band
	WonPerKWh float64
}

// GenerationMode selects how daily solar hours are determined
type GenerationMode string

const (
	// ModeFixedHours uses a flat daily-hours assumption independent of location
	ModeFixedHours GenerationMode = "fixed"

	// ModeScoredHours derives daily hours from a 0-100 regional solar score
	ModeScoredHours GenerationMode = "scored"
)

// PricingMode selects how the per-kWh unit price is composed
type PricingMode string

const (
	// PricingWeighted prices each kWh at smp + rec*RECWeight
	PricingWeighted PricingMode = "weighted"

	// PricingFlat prices each kWh at the flat combined constant
	PricingFlat PricingMode = "flat"
)

// Params collects every constant used by the estimators
type Params struct {
	// UsageTiers is the progressive bill-to-usage schedule, ordered by bound
	UsageTiers []UsageTier `json:"usage_tiers"`

	// FixedDailyHours is the daily solar hours in fixed mode
	FixedDailyHours float64 `json:"fixed_daily_hours"`

	// BaseDailyHours anchors scored mode: hours = base + score/100
	BaseDailyHours float64 `json:"base_daily_hours"`

	// KWPerM2 converts installable area to capacity
	KWPerM2 float64 `json:"kw_per_m2"`

	// DaysPerMonth normalizes daily generation to monthly
	DaysPerMonth float64 `json:"days_per_month"`

	// RECWeight is the weighting applied to the REC price in weighted mode
	RECWeight float64 `json:"rec_weight"`

	// FlatPriceWonPerKWh is the combined unit price in flat mode
	FlatPriceWonPerKWh float64 `json:"flat_price_won_per_kwh"`

	// InvestmentPerKW derives investment cost when none is supplied
	InvestmentPerKW float64 `json:"investment_per_kw"`

	// EmissionFactorKgPerKWh converts kWh to avoided CO2
	EmissionFactorKgPerKWh float64 `json:"emission_factor_kg_per_kwh"`

	// TreeAbsorptionKgPerYear is the CO2 one pine tree absorbs per year
	TreeAbsorptionKgPerYear float64 `json:"tree_absorption_kg_per_year"`

	// DegradationFactor is the annual multiplicative panel-efficiency decline
	DegradationFactor float64 `json:"degradation_factor"`

	// ProjectionYears is the default projection horizon
	ProjectionYears int `json:"projection_years"`
}

// DefaultParams returns the canonical constants. The emission factor
// defaults to 0.4781 kg/kWh; presets may select the 0.44 variant.
func DefaultParams() Params {
	return Params{
		UsageTiers: []UsageTier{
			{UpToKRW: 24000, BaseKWh: 0, WonPerKWh: 120},
			{UpToKRW: 66800, BaseKWh: 200, WonPerKWh: 214},
			{UpToKRW: 0, BaseKWh: 400, WonPerKWh: 307},
		},
		FixedDailyHours:         3.6,
		BaseDailyHours:          3.0,
		KWPerM2:                 0.15,
		DaysPerMonth:            30,
		RECWeight:               1.2,
		FlatPriceWonPerKWh:      200,
		InvestmentPerKW:         1_500_000,
		EmissionFactorKgPerKWh:  0.4781,
		TreeAbsorptionKgPerYear: 6.6,
		DegradationFactor:       0.993,
		ProjectionYears:         10,
	}
}
