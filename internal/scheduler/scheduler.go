// Package scheduler drives the periodic market refresh: on each tick it
// re-reads the market fixture, records the current prices to the history
// recorder, and refreshes the grid status served by the API.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"greenwatt/core/market"
	"greenwatt/internal/collector"
	"greenwatt/internal/logging"
	"greenwatt/internal/recorder"
)

// Scheduler manages the cron-driven refresh tasks
type Scheduler struct {
	cron      *cron.Cron
	store     *market.Store
	recorder  recorder.Recorder
	collector *collector.Client
	fixture   string
	ctx       context.Context
}

// New creates a scheduler refreshing the given store from the fixture path
func New(ctx context.Context, store *market.Store, rec recorder.Recorder, col *collector.Client, fixturePath string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		store:     store,
		recorder:  rec,
		collector: col,
		fixture:   fixturePath,
		ctx:       ctx,
	}
}

// Register registers the refresh task with a cron expression
func (s *Scheduler) Register(refreshCron string) error {
	if refreshCron == "" {
		refreshCron = "@hourly"
	}
	_, err := s.cron.AddFunc(refreshCron, s.refresh)
	return err
}

// Start starts the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logging.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logging.Info("scheduler stopped")
}

// RunNow executes one refresh immediately
func (s *Scheduler) RunNow() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	snapshot, err := market.LoadSnapshot(s.fixture)
	if err != nil {
		logging.Error("market refresh failed", zap.Error(err))
		return
	}
	if err := s.store.SetSnapshot(snapshot); err != nil {
		logging.Error("market snapshot rejected", zap.Error(err))
		return
	}

	tick := market.PriceTick{
		Date:   time.Now().Format("2006-01-02"),
		SMP:    snapshot.Current.SMP,
		REC:    snapshot.Current.REC,
		Carbon: snapshot.Current.Carbon,
	}
	if err := s.recorder.RecordTick(tick); err != nil {
		logging.Error("record price tick failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(s.ctx, 30*time.Second)
	defer cancel()
	if _, err := s.collector.FetchEnergyStatus(ctx); err != nil {
		logging.Warn("energy status refresh failed", zap.Error(err))
	}

	logging.Info("market refreshed",
		zap.Float64("smp", snapshot.Current.SMP),
		zap.Float64("rec", snapshot.Current.REC))
}
