package market

import (
	"sync"

	"greenwatt/internal/errors"
)

// Store holds the current market snapshot and regional scores for the API.
// The scheduler replaces the snapshot on refresh; reads are concurrent.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	scores   map[string]LocationScore
}

// NewStore creates a store seeded with a snapshot and score table
func NewStore(snapshot *Snapshot, scores map[string]LocationScore) *Store {
	return &Store{snapshot: snapshot, scores: scores}
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, errors.NotFound("market snapshot", "current")
	}
	return s.snapshot, nil
}

// SetSnapshot replaces the current snapshot after validating it
func (s *Store) SetSnapshot(snapshot *Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	return nil
}

// Score returns the location score for a region
func (s *Store) Score(region string) (LocationScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[region]
	if !ok {
		return LocationScore{}, errors.NotFound("region", region)
	}
	return score, nil
}

// Regions lists the regions with a score record
func (s *Store) Regions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	regions := make([]string, 0, len(s.scores))
	for region := range s.scores {
		regions = append(regions, region)
	}
	return regions
}
