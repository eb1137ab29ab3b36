package calc

import (
	"math"

	"github.com/shopspring/decimal"

	"greenwatt/internal/errors"
)

// MarketPrices are point-in-time unit prices supplied by the market layer
type MarketPrices struct {
	SMPWonPerKWh float64 `json:"smp_won_per_kwh"`
	RECWonPerKWh float64 `json:"rec_won_per_kwh"`
}

// RevenueInput feeds the revenue estimator. MonthlyGenerationKWh is the
// generation of ONE month; annual figures are derived by multiplying by 12.
//
// InvestmentKRW, when zero, is derived from CapacityKW via InvestmentPerKW.
// An explicitly non-positive investment makes ROI and payback undefined.
type RevenueInput struct {
	MonthlyGenerationKWh float64         `json:"monthly_generation_kwh"`
	Prices               MarketPrices    `json:"prices"`
	Mode                 PricingMode     `json:"mode"`
	InvestmentKRW        decimal.Decimal `json:"investment_krw"`
	CapacityKW           float64         `json:"capacity_kw"`
}

// RevenueProjection is the derived monetary outcome of an installation.
// Monetary amounts are exact decimals in raw KRW; ratios are float64.
type RevenueProjection struct {
	UnitPriceWonPerKWh float64         `json:"unit_price_won_per_kwh"`
	MonthlyRevenueKRW  decimal.Decimal `json:"monthly_revenue_krw"`
	YearlyRevenueKRW   decimal.Decimal `json:"yearly_revenue_krw"`
	InvestmentKRW      decimal.Decimal `json:"investment_krw"`
	PaybackYears       float64         `json:"payback_years"`
	ROIPercent         float64         `json:"roi_percent"`
}

var monthsPerYear = decimal.NewFromInt(12)

// EstimateRevenue converts monthly generation and market prices into a
// revenue projection with ROI and simple non-discounted payback.
func (p Params) EstimateRevenue(in RevenueInput) (RevenueProjection, error) {
	if math.IsNaN(in.MonthlyGenerationKWh) || math.IsInf(in.MonthlyGenerationKWh, 0) || in.MonthlyGenerationKWh < 0 {
		return RevenueProjection{}, errors.Inputf("monthly generation must be a non-negative finite number, got %v", in.MonthlyGenerationKWh)
	}

	unitPrice, err := p.unitPrice(in.Mode, in.Prices)
	if err != nil {
		return RevenueProjection{}, err
	}

	monthly := decimal.NewFromFloat(in.MonthlyGenerationKWh).Mul(decimal.NewFromFloat(unitPrice))
	yearly := monthly.Mul(monthsPerYear)

	investment, err := p.resolveInvestment(in)
	if err != nil {
		return RevenueProjection{}, err
	}

	// Ratio guards: a zero denominator is reported, never rendered as 0 or Inf.
	if !investment.IsPositive() {
		return RevenueProjection{}, errors.Undefined("ROI and payback are undefined for non-positive investment")
	}
	if !yearly.IsPositive() {
		return RevenueProjection{}, errors.Undefined("payback is undefined when yearly revenue is zero")
	}

	roi, _ := yearly.Div(investment).Mul(decimal.NewFromInt(100)).Float64()
	payback, _ := investment.Div(yearly).Float64()

	return RevenueProjection{
		UnitPriceWonPerKWh: unitPrice,
		MonthlyRevenueKRW:  monthly,
		YearlyRevenueKRW:   yearly,
		InvestmentKRW:      investment,
		PaybackYears:       payback,
		ROIPercent:         roi,
	}, nil
}

func (p Params) unitPrice(mode PricingMode, prices MarketPrices) (float64, error) {
	switch mode {
	case PricingWeighted, "":
		if math.IsNaN(prices.SMPWonPerKWh) || math.IsInf(prices.SMPWonPerKWh, 0) ||
			math.IsNaN(prices.RECWonPerKWh) || math.IsInf(prices.RECWonPerKWh, 0) ||
			prices.SMPWonPerKWh < 0 || prices.RECWonPerKWh < 0 {
			return 0, errors.Input("market prices must be non-negative finite numbers")
		}
		return prices.SMPWonPerKWh + prices.RECWonPerKWh*p.RECWeight, nil
	case PricingFlat:
		return p.FlatPriceWonPerKWh, nil
	default:
		return 0, errors.Inputf("unknown pricing mode %q", mode)
	}
}

func (p Params) resolveInvestment(in RevenueInput) (decimal.Decimal, error) {
	if !in.InvestmentKRW.IsZero() {
		return in.InvestmentKRW, nil
	}
	if math.IsNaN(in.CapacityKW) || math.IsInf(in.CapacityKW, 0) {
		return decimal.Zero, errors.Inputf("capacity must be a finite number, got %v", in.CapacityKW)
	}
	if in.CapacityKW > 0 {
		return decimal.NewFromFloat(in.CapacityKW).Mul(decimal.NewFromFloat(p.InvestmentPerKW)), nil
	}
	return decimal.Zero, errors.Input("investment_krw or capacity_kw required to derive investment")
}
