// Package preset loads named calculation parameter presets from HCL files.
//
// The dashboard's call sites historically diverged on constants (emission
// factor 0.4781 vs 0.44, weighted vs flat pricing). Presets make that
// divergence explicit: each call site names the preset it wants and the
// constants come from one place.
package preset

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"greenwatt/core/calc"
	"greenwatt/internal/errors"
)

// DefaultName is the built-in preset resolving to calc.DefaultParams
const DefaultName = "default"

// File is the root of a preset HCL file
type File struct {
	Presets []Block `hcl:"preset,block"`
}

// Block is one named preset. Unset attributes inherit the default value.
type Block struct {
	Name string `hcl:"name,label"`

	FixedDailyHours *float64 `hcl:"fixed_daily_hours,optional"`
	BaseDailyHours  *float64 `hcl:"base_daily_hours,optional"`
	KWPerM2         *float64 `hcl:"kw_per_m2,optional"`
	DaysPerMonth    *float64 `hcl:"days_per_month,optional"`
	RECWeight       *float64 `hcl:"rec_weight,optional"`
	FlatPrice       *float64 `hcl:"flat_price,optional"`
	InvestmentPerKW *float64 `hcl:"investment_per_kw,optional"`
	EmissionFactor  *float64 `hcl:"emission_factor,optional"`
	TreeAbsorption  *float64 `hcl:"tree_absorption,optional"`
	Degradation     *float64 `hcl:"degradation,optional"`
	ProjectionYears *int     `hcl:"projection_years,optional"`
}

// Registry resolves preset names to calculation parameters
type Registry struct {
	blocks map[string]Block
}

// Load parses an HCL preset file into a registry. An empty path yields a
// registry with only the built-in default preset.
func Load(path string) (*Registry, error) {
	r := &Registry{blocks: make(map[string]Block)}
	if path == "" {
		return r, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Config("preset file not readable", err).WithContext("path", path)
	}

	var file File
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("preset file invalid", err).WithContext("path", path)
	}

	for _, block := range file.Presets {
		if _, dup := r.blocks[block.Name]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate preset %q", block.Name)
		}
		r.blocks[block.Name] = block
	}
	return r, nil
}

// Names lists the available preset names, built-in default included
func (r *Registry) Names() []string {
	names := []string{DefaultName}
	for name := range r.blocks {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	return names
}

// Resolve returns the parameters for a preset name. The built-in default
// applies when name is empty; a preset block named "default" overrides it.
func (r *Registry) Resolve(name string) (calc.Params, error) {
	params := calc.DefaultParams()
	if name == "" {
		name = DefaultName
	}

	block, ok := r.blocks[name]
	if !ok {
		if name == DefaultName {
			return params, nil
		}
		return calc.Params{}, errors.NotFound("preset", name)
	}

	apply(&params, block)
	return params, nil
}

func apply(params *calc.Params, block Block) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&params.FixedDailyHours, block.FixedDailyHours)
	setF(&params.BaseDailyHours, block.BaseDailyHours)
	setF(&params.KWPerM2, block.KWPerM2)
	setF(&params.DaysPerMonth, block.DaysPerMonth)
	setF(&params.RECWeight, block.RECWeight)
	setF(&params.FlatPriceWonPerKWh, block.FlatPrice)
	setF(&params.InvestmentPerKW, block.InvestmentPerKW)
	setF(&params.EmissionFactorKgPerKWh, block.EmissionFactor)
	setF(&params.TreeAbsorptionKgPerYear, block.TreeAbsorption)
	setF(&params.DegradationFactor, block.Degradation)
	if block.ProjectionYears != nil {
		params.ProjectionYears = *block.ProjectionYears
	}
}
