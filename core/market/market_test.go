package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwatt/internal/errors"
)

const sampleFixture = `{
  "current": {"smp": 140.5, "rec": 70200, "carbon": 12150, "reserve_ratio": 15.2, "updated_at": "2026-08-30 09:00:00"},
  "history": [
    {"date": "2026-08-29", "smp": 138.2, "rec": 69800, "carbon": 12000},
    {"date": "2026-08-30", "smp": 140.5, "rec": 70200, "carbon": 12150}
  ],
  "shares": [{"name": "solar", "value": 15}, {"name": "wind", "value": 8}]
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	snapshot, err := LoadSnapshot(writeFixture(t, "market-data.json", sampleFixture))
	require.NoError(t, err)

	assert.InDelta(t, 140.5, snapshot.Current.SMP, 1e-9)
	assert.InDelta(t, 70200.0, snapshot.Current.REC, 1e-9)
	require.Len(t, snapshot.History, 2)
	assert.Equal(t, "2026-08-29", snapshot.History[0].Date)
}

func TestLoadSnapshotRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantType errors.Type
	}{
		{"invalid json", `{"current":`, errors.TypeParsing},
		{"negative price", `{"current": {"smp": -1, "rec": 70000}}`, errors.TypeInput},
		{"empty current", `{"current": {"smp": 0, "rec": 0}}`, errors.TypeInput},
		{"history without date", `{"current": {"smp": 140, "rec": 70000}, "history": [{"smp": 1, "rec": 2}]}`, errors.TypeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnapshot(writeFixture(t, "bad.json", tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestLoadScores(t *testing.T) {
	path := writeFixture(t, "green-check.json", `[
  {"region": "gyeonggi", "solar_score": 72, "grid_score": 64, "density_score": 58, "subsidy_score": 80, "total_score": 68, "grade": "B"},
  {"region": "jeju", "solar_score": 91, "grid_score": 45, "density_score": 70, "subsidy_score": 88, "total_score": 74, "grade": "A"}
]`)

	scores, err := LoadScores(path)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.InDelta(t, 91.0, scores["jeju"].SolarScore, 1e-9)
}

func TestLoadScoresRejectsOutOfRange(t *testing.T) {
	path := writeFixture(t, "green-check.json", `[
  {"region": "nowhere", "solar_score": 120, "grid_score": 10, "density_score": 10, "subsidy_score": 10, "total_score": 10}
]`)

	_, err := LoadScores(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestStore(t *testing.T) {
	snapshot := &Snapshot{Current: Prices{SMP: 140, REC: 70000}}
	store := NewStore(snapshot, map[string]LocationScore{
		"jeju": {Region: "jeju", SolarScore: 91, TotalScore: 74},
	})

	got, err := store.Snapshot()
	require.NoError(t, err)
	assert.InDelta(t, 140.0, got.Current.SMP, 1e-9)

	score, err := store.Score("jeju")
	require.NoError(t, err)
	assert.InDelta(t, 91.0, score.SolarScore, 1e-9)

	_, err = store.Score("atlantis")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	require.Error(t, store.SetSnapshot(&Snapshot{Current: Prices{SMP: -1}}))
	require.NoError(t, store.SetSnapshot(&Snapshot{Current: Prices{SMP: 150, REC: 69000}}))
	got, err = store.Snapshot()
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got.Current.SMP, 1e-9)
}
