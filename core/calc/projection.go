package calc

import (
	"github.com/shopspring/decimal"

	"greenwatt/internal/errors"
)

// YearRevenue is one period of a multi-year projection. PeriodIndex is
// 1-based; RevenueKRW is raw currency, display scaling is the caller's.
type YearRevenue struct {
	PeriodIndex int             `json:"period_index"`
	RevenueKRW  decimal.Decimal `json:"revenue_krw"`
}

// ProjectYears produces exactly periods entries where each year's revenue
// is the previous year's multiplied by the degradation factor. A periods
// value of 0 or less falls back to the configured horizon.
func (p Params) ProjectYears(initialYearlyKRW decimal.Decimal, periods int) ([]YearRevenue, error) {
	if periods <= 0 {
		periods = p.ProjectionYears
	}
	if periods <= 0 {
		return nil, errors.Input("projection requires at least one period")
	}
	if p.DegradationFactor <= 0 || p.DegradationFactor > 1 {
		return nil, errors.Inputf("degradation factor must be within (0,1], got %v", p.DegradationFactor)
	}
	if initialYearlyKRW.IsNegative() {
		return nil, errors.Input("initial yearly revenue must be non-negative")
	}

	decay := decimal.NewFromFloat(p.DegradationFactor)
	series := make([]YearRevenue, periods)
	revenue := initialYearlyKRW
	for i := 0; i < periods; i++ {
		series[i] = YearRevenue{PeriodIndex: i + 1, RevenueKRW: revenue}
		revenue = revenue.Mul(decay)
	}
	return series, nil
}
