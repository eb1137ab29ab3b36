// Package recorder persists the market price history observed by the
// scheduler so the dashboard can chart trends across restarts.
package recorder

import (
	"greenwatt/core/market"
)

// Recorder records market price observations
type Recorder interface {
	// RecordTick appends one price observation
	RecordTick(tick market.PriceTick) error

	// History returns the most recent observations, newest last
	History(limit int) ([]market.PriceTick, error)

	// Close releases underlying resources
	Close() error
}

// Noop discards all records. Used when no database path is configured.
type Noop struct{}

// NewNoop creates a no-op recorder
func NewNoop() *Noop { return &Noop{} }

func (*Noop) RecordTick(market.PriceTick) error       { return nil }
func (*Noop) History(int) ([]market.PriceTick, error) { return nil, nil }
func (*Noop) Close() error                            { return nil }
