package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"greenwatt/internal/errors"
	"greenwatt/internal/logging"
)

// FetchEnergyStatus returns the current grid supply/demand status from the
// power statistics portal, or the fallback reading when no service key is
// configured.
func (c *Client) FetchEnergyStatus(ctx context.Context) (*EnergyStatus, error) {
	if c.cfg.EnergyStatusKey == "" {
		logging.Debug("energy status key missing, serving fallback")
		return c.fallbackEnergyStatus(), nil
	}

	url := fmt.Sprintf("%s?serviceKey=%s&_type=json", c.cfg.EnergyStatusURL, c.cfg.EnergyStatusKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("build energy status request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Network("fetch energy status", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeNetwork, "energy status portal returned %s", resp.Status)
	}

	var status EnergyStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, errors.Parsing("decode energy status response", err)
	}

	logging.Info("energy status fetched",
		zap.Float64("supply_gw", status.Current.SupplyGW),
		zap.Float64("demand_gw", status.Current.DemandGW))
	return &status, nil
}

// fallbackEnergyStatus mirrors the development payload the dashboard serves
// when the portal key is absent: plausible constants, not random noise, so
// repeated calls are deterministic.
func (c *Client) fallbackEnergyStatus() *EnergyStatus {
	chart := make([]HourlyPoint, 24)
	for hour := 0; hour < 24; hour++ {
		// flat overnight, midday demand bump, solar share peaking at noon
		bump := 0.0
		if hour >= 8 && hour <= 20 {
			bump = 6.0 - 0.5*absFloat(float64(hour-14))
		}
		chart[hour] = HourlyPoint{
			Time:      fmt.Sprintf("%d:00", hour),
			Supply:    78.0 + bump,
			Demand:    68.0 + bump,
			Renewable: 11.0 + bump/2,
		}
	}
	return &EnergyStatus{
		Current: GridReading{
			SupplyGW:        82.4,
			DemandGW:        72.1,
			ReservePowerGW:  10.3,
			ReserveRatioPct: 14.2,
			RenewableShare:  18.5,
			UpdatedAt:       c.now().UTC().Format(time.RFC3339),
		},
		ChartData: chart,
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
