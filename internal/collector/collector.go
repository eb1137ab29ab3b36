// Package collector fetches live data from the public portals behind the
// dashboard: grid supply/demand status, renewable-energy news, and policy
// support programs. Each fetcher degrades to a deterministic fallback
// payload when its credential is not configured, so the rest of the system
// never blocks on a missing API key.
package collector

import (
	"net/http"
	"time"

	"greenwatt/internal/config"
)

// EnergyStatus is the current grid supply/demand picture
type EnergyStatus struct {
	Current   GridReading   `json:"current"`
	ChartData []HourlyPoint `json:"chart_data"`
}

// GridReading is a point-in-time grid observation, all power in GW
type GridReading struct {
	SupplyGW        float64 `json:"supply"`
	DemandGW        float64 `json:"demand"`
	ReservePowerGW  float64 `json:"reserve_power"`
	ReserveRatioPct float64 `json:"reserve_ratio"`
	RenewableShare  float64 `json:"renewable_share"`
	UpdatedAt       string  `json:"updated_at"`
}

// HourlyPoint is one hour of the daily supply/demand curve
type HourlyPoint struct {
	Time      string  `json:"time"`
	Supply    float64 `json:"supply"`
	Demand    float64 `json:"demand"`
	Renewable float64 `json:"renewable"`
}

// NewsItem is one renewable-energy news entry
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pub_date"`
}

// Policy is one regional support program
type Policy struct {
	ID          string `json:"id"`
	Region      string `json:"region"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Client fetches from the configured public portals
type Client struct {
	http *http.Client
	cfg  config.PortalConfig
	now  func() time.Time
}

// New creates a portal client from configuration
func New(cfg config.PortalConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		cfg:  cfg,
		now:  time.Now,
	}
}
