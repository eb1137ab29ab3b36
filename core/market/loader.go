package market

import (
	"encoding/json"
	"os"

	"greenwatt/internal/errors"
)

// LoadSnapshot reads and validates a market-data JSON fixture
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read market fixture", err).WithContext("path", path)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Parsing("decode market fixture", err).WithContext("path", path)
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// LoadScores reads and validates a regional score JSON fixture. The
// fixture is a list of regions; the returned map is keyed by region name.
func LoadScores(path string) (map[string]LocationScore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read score fixture", err).WithContext("path", path)
	}

	var list []LocationScore
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Parsing("decode score fixture", err).WithContext("path", path)
	}

	scores := make(map[string]LocationScore, len(list))
	for i := range list {
		if err := list[i].Validate(); err != nil {
			return nil, err
		}
		scores[list[i].Region] = list[i]
	}
	return scores, nil
}
