package api

import (
	"github.com/shopspring/decimal"

	"greenwatt/core/calc"
	"greenwatt/core/market"
	"greenwatt/core/preset"
	"greenwatt/internal/errors"
)

// Handler orchestrates the estimators for the API. It owns no calculation
// logic; everything numeric happens in core/calc.
type Handler struct {
	registry *preset.Registry
	store    *market.Store
}

// NewHandler creates a handler backed by a preset registry and market store
func NewHandler(registry *preset.Registry, store *market.Store) *Handler {
	return &Handler{registry: registry, store: store}
}

func (h *Handler) execute(req *EstimateRequest) (*EstimateResponse, error) {
	presetName := req.Preset
	if presetName == "" {
		presetName = preset.DefaultName
	}
	params, err := h.registry.Resolve(presetName)
	if err != nil {
		return nil, err
	}

	prices, err := h.resolvePrices(req)
	if err != nil {
		return nil, err
	}

	resp := &EstimateResponse{Mode: req.Mode, Preset: presetName, Prices: prices}

	switch req.Mode {
	case ModeBill:
		return h.estimateFromBill(resp, params, req)
	case ModeArea, ModeCapacity, ModeInvestment:
		return h.estimateInstallation(resp, params, req, prices)
	default:
		return nil, errors.Inputf("unknown estimator mode %q", req.Mode)
	}
}

// estimateFromBill is the eco-calculator path: bill -> usage -> carbon.
func (h *Handler) estimateFromBill(resp *EstimateResponse, params calc.Params, req *EstimateRequest) (*EstimateResponse, error) {
	usage, err := params.EstimateUsage(req.BillKRW)
	if err != nil {
		return nil, err
	}
	carbon, err := params.EstimateCarbonOffset(usage)
	if err != nil {
		return nil, err
	}

	resp.UsageKWh = &usage
	resp.Carbon = carbon
	return resp, nil
}

// estimateInstallation is the investment-analyzer path: installation
// parameter -> generation -> revenue, carbon, multi-year projection.
func (h *Handler) estimateInstallation(resp *EstimateResponse, params calc.Params, req *EstimateRequest, prices calc.MarketPrices) (*EstimateResponse, error) {
	genInput := calc.GenerationInput{
		CapacityKW: req.CapacityKW,
		AreaM2:     req.AreaM2,
	}
	if req.Mode == ModeInvestment {
		if req.InvestmentKRW <= 0 {
			return nil, errors.Input("investment mode requires a positive investment_krw")
		}
		genInput.CapacityKW = req.InvestmentKRW / params.InvestmentPerKW
		genInput.AreaM2 = 0
	}
	if req.Region != "" {
		score, err := h.store.Score(req.Region)
		if err != nil {
			return nil, err
		}
		genInput.Mode = calc.ModeScoredHours
		genInput.SolarScore = score.SolarScore
	}

	gen, err := params.EstimateGeneration(genInput)
	if err != nil {
		return nil, err
	}

	revInput := calc.RevenueInput{
		MonthlyGenerationKWh: gen.MonthlyKWh,
		Prices:               prices,
		Mode:                 req.PricingMode,
		CapacityKW:           gen.CapacityKW,
	}
	if req.InvestmentKRW > 0 {
		revInput.InvestmentKRW = decimal.NewFromFloat(req.InvestmentKRW)
	}
	revenue, err := params.EstimateRevenue(revInput)
	if err != nil {
		return nil, err
	}

	carbon, err := params.EstimateCarbonOffset(gen.MonthlyKWh * 12)
	if err != nil {
		return nil, err
	}

	projection, err := params.ProjectYears(revenue.YearlyRevenueKRW, params.ProjectionYears)
	if err != nil {
		return nil, err
	}

	resp.Generation = &gen
	resp.Revenue = &revenue
	resp.Carbon = carbon
	resp.Projection = projection
	return resp, nil
}

// resolvePrices picks explicit request prices over the market snapshot.
// Snapshot REC is quoted per MWh and converted to per kWh at this boundary.
func (h *Handler) resolvePrices(req *EstimateRequest) (calc.MarketPrices, error) {
	if req.Prices != nil {
		return *req.Prices, nil
	}
	if req.PricingMode == calc.PricingFlat {
		return calc.MarketPrices{}, nil
	}

	snapshot, err := h.store.Snapshot()
	if err != nil {
		return calc.MarketPrices{}, err
	}
	return calc.MarketPrices{
		SMPWonPerKWh: snapshot.Current.SMP,
		RECWonPerKWh: snapshot.Current.REC / 1000,
	}, nil
}
