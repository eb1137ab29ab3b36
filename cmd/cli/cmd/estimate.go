// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"greenwatt/core/calc"
	"greenwatt/core/market"
	"greenwatt/core/preset"
	"greenwatt/internal/config"
)

var (
	billKRW       float64
	areaM2        float64
	capacityKW    float64
	investmentKRW float64
	regionName    string
	presetName    string
	smpPrice      float64
	recPrice      float64
	outputFormat  string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate solar installation economics",
	Long: `Estimate generation, revenue, payback and carbon offset.

Exactly one free input selects the estimator:
  --bill        monthly electricity bill in KRW (usage and carbon only)
  --area        installable area in m2
  --capacity    installed capacity in kW
  --investment  investment budget in KRW (sizes the installation)

Market prices come from the configured fixture unless --smp/--rec are given.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64Var(&billKRW, "bill", 0, "monthly electricity bill in KRW")
	estimateCmd.Flags().Float64Var(&areaM2, "area", 0, "installable area in m2")
	estimateCmd.Flags().Float64Var(&capacityKW, "capacity", 0, "installed capacity in kW")
	estimateCmd.Flags().Float64Var(&investmentKRW, "investment", 0, "investment in KRW")
	estimateCmd.Flags().StringVar(&regionName, "region", "", "region for scored solar hours")
	estimateCmd.Flags().StringVar(&presetName, "preset", "", "calculation preset name")
	estimateCmd.Flags().Float64Var(&smpPrice, "smp", 0, "SMP price in KRW/kWh (overrides fixture)")
	estimateCmd.Flags().Float64Var(&recPrice, "rec", 0, "REC price in KRW/kWh (overrides fixture)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	// ParseFloat accepts "Inf" and "NaN"; reject them before any math.
	if err := checkFiniteFlags(); err != nil {
		return err
	}

	cfg := config.Get()

	registry, err := preset.Load(cfg.Calc.PresetFile)
	if err != nil {
		return err
	}
	name := presetName
	if name == "" {
		name = cfg.Calc.DefaultPreset
	}
	params, err := registry.Resolve(name)
	if err != nil {
		return err
	}

	if billKRW > 0 {
		return estimateBill(params)
	}

	prices, err := resolvePrices(cfg)
	if err != nil {
		return err
	}

	input := calc.GenerationInput{CapacityKW: capacityKW, AreaM2: areaM2}
	if investmentKRW > 0 && capacityKW == 0 && areaM2 == 0 {
		input.CapacityKW = investmentKRW / params.InvestmentPerKW
	}
	if regionName != "" {
		scores, err := market.LoadScores(cfg.Market.ScoresPath)
		if err != nil {
			return err
		}
		score, ok := scores[regionName]
		if !ok {
			return fmt.Errorf("unknown region %q", regionName)
		}
		input.Mode = calc.ModeScoredHours
		input.SolarScore = score.SolarScore
	}

	gen, err := params.EstimateGeneration(input)
	if err != nil {
		return err
	}

	revInput := calc.RevenueInput{
		MonthlyGenerationKWh: gen.MonthlyKWh,
		Prices:               prices,
		CapacityKW:           gen.CapacityKW,
	}
	if investmentKRW > 0 {
		revInput.InvestmentKRW = decimal.NewFromFloat(investmentKRW)
	}
	revenue, err := params.EstimateRevenue(revInput)
	if err != nil {
		return err
	}

	carbon, err := params.EstimateCarbonOffset(gen.MonthlyKWh * 12)
	if err != nil {
		return err
	}

	projection, err := params.ProjectYears(revenue.YearlyRevenueKRW, params.ProjectionYears)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(map[string]interface{}{
			"generation": gen,
			"revenue":    revenue,
			"carbon":     carbon,
			"projection": projection,
		})
	}

	fmt.Printf("Capacity:        %.1f kW\n", gen.CapacityKW)
	fmt.Printf("Generation:      %.1f kWh/day, %.0f kWh/month\n", gen.DailyKWh, gen.MonthlyKWh)
	fmt.Printf("Unit price:      %.2f KRW/kWh\n", revenue.UnitPriceWonPerKWh)
	fmt.Printf("Revenue:         %s KRW/month, %s KRW/year\n",
		revenue.MonthlyRevenueKRW.Round(0), revenue.YearlyRevenueKRW.Round(0))
	fmt.Printf("Investment:      %s KRW\n", revenue.InvestmentKRW.Round(0))
	fmt.Printf("ROI:             %.1f %%/year\n", revenue.ROIPercent)
	fmt.Printf("Payback:         %.1f years\n", revenue.PaybackYears)
	fmt.Printf("CO2 offset:      %.1f kg/year (~%.1f pine trees)\n", carbon.CO2Kg, carbon.EquivalentTrees)
	fmt.Println("\n10-year projection (KRW/year):")
	for _, year := range projection {
		fmt.Printf("  year %2d: %s\n", year.PeriodIndex, year.RevenueKRW.Round(0))
	}
	return nil
}

func checkFiniteFlags() error {
	flags := map[string]float64{
		"bill":       billKRW,
		"area":       areaM2,
		"capacity":   capacityKW,
		"investment": investmentKRW,
		"smp":        smpPrice,
		"rec":        recPrice,
	}
	for name, v := range flags {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("--%s must be a finite number, got %v", name, v)
		}
	}
	return nil
}

func estimateBill(params calc.Params) error {
	usage, err := params.EstimateUsage(billKRW)
	if err != nil {
		return err
	}
	carbon, err := params.EstimateCarbonOffset(usage)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(map[string]interface{}{
			"usage_kwh": usage,
			"carbon":    carbon,
		})
	}

	fmt.Printf("Estimated usage: %.0f kWh/month\n", usage)
	fmt.Printf("CO2 footprint:   %.1f kg/month (~%.1f pine trees to offset)\n",
		carbon.CO2Kg, carbon.EquivalentTrees)
	return nil
}

func resolvePrices(cfg *config.Config) (calc.MarketPrices, error) {
	if smpPrice > 0 || recPrice > 0 {
		return calc.MarketPrices{SMPWonPerKWh: smpPrice, RECWonPerKWh: recPrice}, nil
	}

	snapshot, err := market.LoadSnapshot(cfg.Market.FixturePath)
	if err != nil {
		return calc.MarketPrices{}, err
	}
	// fixture REC is quoted per MWh
	return calc.MarketPrices{
		SMPWonPerKWh: snapshot.Current.SMP,
		RECWonPerKWh: snapshot.Current.REC / 1000,
	}, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
