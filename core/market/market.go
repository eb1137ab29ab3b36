// Package market defines the typed records behind the dashboard's market
// and regional fixtures, with validation at the boundary. Malformed or
// out-of-domain fixture data is rejected instead of read optimistically.
package market

import (
	"math"

	"greenwatt/internal/errors"
)

// Prices are the current point-in-time market prices
type Prices struct {
	SMP          float64 `json:"smp"`
	REC          float64 `json:"rec"`
	Carbon       float64 `json:"carbon"`
	ReserveRatio float64 `json:"reserve_ratio"`
	UpdatedAt    string  `json:"updated_at"`
}

// PriceTick is one historical observation
type PriceTick struct {
	Date   string  `json:"date"`
	SMP    float64 `json:"smp"`
	REC    float64 `json:"rec"`
	Carbon float64 `json:"carbon"`
}

// Share is one slice of the generation mix
type Share struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Snapshot mirrors the market-data fixture shape
type Snapshot struct {
	Current Prices      `json:"current"`
	History []PriceTick `json:"history"`
	Shares  []Share     `json:"shares"`
}

// Validate rejects snapshots with missing or out-of-domain fields
func (s *Snapshot) Validate() error {
	if err := validatePrice("current.smp", s.Current.SMP); err != nil {
		return err
	}
	if err := validatePrice("current.rec", s.Current.REC); err != nil {
		return err
	}
	if s.Current.SMP == 0 && s.Current.REC == 0 {
		return errors.Input("snapshot has no current prices")
	}
	for i, tick := range s.History {
		if tick.Date == "" {
			return errors.Inputf("history[%d] is missing a date", i)
		}
		if err := validatePrice("history.smp", tick.SMP); err != nil {
			return err
		}
		if err := validatePrice("history.rec", tick.REC); err != nil {
			return err
		}
	}
	return nil
}

func validatePrice(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errors.Inputf("%s must be a non-negative finite number, got %v", field, v)
	}
	return nil
}

// LocationScore is the regional suitability record behind the green-check
// page. All scores are 0-100.
type LocationScore struct {
	Region       string  `json:"region"`
	SolarScore   float64 `json:"solar_score"`
	GridScore    float64 `json:"grid_score"`
	DensityScore float64 `json:"density_score"`
	SubsidyScore float64 `json:"subsidy_score"`
	TotalScore   float64 `json:"total_score"`
	Grade        string  `json:"grade"`
}

// Validate rejects scores outside the 0-100 domain
func (l *LocationScore) Validate() error {
	if l.Region == "" {
		return errors.Input("location score is missing a region")
	}
	scores := map[string]float64{
		"solar_score":   l.SolarScore,
		"grid_score":    l.GridScore,
		"density_score": l.DensityScore,
		"subsidy_score": l.SubsidyScore,
		"total_score":   l.TotalScore,
	}
	for field, score := range scores {
		if math.IsNaN(score) || score < 0 || score > 100 {
			return errors.Inputf("%s for %s must be within [0,100], got %v", field, l.Region, score)
		}
	}
	return nil
}
