package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwatt/core/market"
	"greenwatt/internal/collector"
	"greenwatt/internal/config"
)

type captureRecorder struct {
	ticks []market.PriceTick
}

func (c *captureRecorder) RecordTick(tick market.PriceTick) error {
	c.ticks = append(c.ticks, tick)
	return nil
}

func (c *captureRecorder) History(int) ([]market.PriceTick, error) { return c.ticks, nil }
func (c *captureRecorder) Close() error                            { return nil }

func writeFixture(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func newTestScheduler(t *testing.T, fixture string) (*Scheduler, *market.Store, *captureRecorder) {
	t.Helper()
	store := market.NewStore(&market.Snapshot{
		Current: market.Prices{SMP: 100, REC: 60000, Carbon: 8000},
	}, nil)
	rec := &captureRecorder{}
	col := collector.New(config.PortalConfig{})
	return New(context.Background(), store, rec, col, fixture), store, rec
}

func TestRefreshUpdatesStoreAndRecorder(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "market.json")
	writeFixture(t, fixture, `{"current":{"smp":151.3,"rec":71500,"carbon":9100},"history":[],"shares":[]}`)

	s, store, rec := newTestScheduler(t, fixture)
	s.RunNow()

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.InDelta(t, 151.3, snapshot.Current.SMP, 1e-9)
	assert.InDelta(t, 71500, snapshot.Current.REC, 1e-9)

	require.Len(t, rec.ticks, 1)
	assert.InDelta(t, 151.3, rec.ticks[0].SMP, 1e-9)
	assert.InDelta(t, 9100, rec.ticks[0].Carbon, 1e-9)
	assert.NotEmpty(t, rec.ticks[0].Date)
}

func TestRefreshKeepsSnapshotOnBadFixture(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "market.json")
	writeFixture(t, fixture, `{"current":{"smp":151.3,"rec":71500,"carbon":9100},"history":[],"shares":[]}`)

	s, store, rec := newTestScheduler(t, fixture)
	s.RunNow()
	require.Len(t, rec.ticks, 1)

	cases := map[string]string{
		"malformed json":      `{"current":`,
		"out-of-domain price": `{"current":{"smp":-5,"rec":71500,"carbon":9100},"history":[],"shares":[]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			writeFixture(t, fixture, body)
			s.RunNow()

			snapshot, err := store.Snapshot()
			require.NoError(t, err)
			assert.InDelta(t, 151.3, snapshot.Current.SMP, 1e-9, "previous snapshot must survive a failed refresh")
			assert.Len(t, rec.ticks, 1, "failed refresh must not record a tick")
		})
	}
}
