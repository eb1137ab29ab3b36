// Package api - Thin, deterministic API layer for the investment dashboard.
// Handlers are only responsible for input ingestion, estimator orchestration
// and output serialization. The API never performs calculation logic.
package api

import (
	"greenwatt/core/calc"
	"greenwatt/core/market"
	"greenwatt/internal/collector"
)

// EstimatorMode selects which quantity is the free input of an estimate
type EstimatorMode string

const (
	// ModeBill estimates usage and carbon footprint from a monthly bill
	ModeBill EstimatorMode = "bill"

	// ModeArea estimates an installation from installable area
	ModeArea EstimatorMode = "area"

	// ModeCapacity estimates an installation from installed capacity
	ModeCapacity EstimatorMode = "capacity"

	// ModeInvestment sizes an installation from an investment budget
	ModeInvestment EstimatorMode = "investment"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	// Mode selects the free input: bill, area, capacity, investment
	Mode EstimatorMode `json:"mode"`

	// BillKRW is the monthly electricity bill (mode=bill)
	BillKRW float64 `json:"bill_krw,omitempty"`

	// AreaM2 is the installable area (mode=area)
	AreaM2 float64 `json:"area_m2,omitempty"`

	// CapacityKW is the installed capacity (mode=capacity)
	CapacityKW float64 `json:"capacity_kw,omitempty"`

	// InvestmentKRW is the investment budget (mode=investment) or an
	// explicit installation cost overriding the derived one
	InvestmentKRW float64 `json:"investment_krw,omitempty"`

	// Region selects a location score for scored generation (optional)
	Region string `json:"region,omitempty"`

	// Preset names the constant preset to apply (default "default")
	Preset string `json:"preset,omitempty"`

	// Prices overrides the market snapshot prices (optional)
	Prices *calc.MarketPrices `json:"prices,omitempty"`

	// PricingMode selects weighted or flat unit pricing (optional)
	PricingMode calc.PricingMode `json:"pricing_mode,omitempty"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	Mode EstimatorMode `json:"mode"`

	// Preset actually applied
	Preset string `json:"preset"`

	// UsageKWh is set in bill mode
	UsageKWh *float64 `json:"usage_kwh,omitempty"`

	// Generation is set for installation modes
	Generation *calc.Generation `json:"generation,omitempty"`

	// Revenue is set for installation modes
	Revenue *calc.RevenueProjection `json:"revenue,omitempty"`

	// Carbon is always set
	Carbon calc.CarbonImpact `json:"carbon"`

	// Projection is the multi-year revenue series, installation modes only
	Projection []calc.YearRevenue `json:"projection,omitempty"`

	// Prices are the unit prices the estimate used
	Prices calc.MarketPrices `json:"prices"`
}

// PricesResponse is the output of GET /market/prices
type PricesResponse struct {
	Current market.Prices      `json:"current"`
	History []market.PriceTick `json:"history"`
	Shares  []market.Share     `json:"shares"`
}

// ScoreResponse is the output of GET /scores/{region}
type ScoreResponse struct {
	Score market.LocationScore `json:"score"`
}

// NewsResponse is the output of GET /news
type NewsResponse struct {
	Items []collector.NewsItem `json:"items"`
}

// PoliciesResponse is the output of GET /policies
type PoliciesResponse struct {
	Policies []collector.Policy `json:"policies"`
}
