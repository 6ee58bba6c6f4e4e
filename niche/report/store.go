package report

import (
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Store keeps the summaries of a run in a leveldb database, keyed by niche and
// generation so that a niche's history iterates in generation order.
type Store struct {
	db *leveldb.DB
}

// OpenStore opens or creates a history database at path.
func OpenStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open history '%s': %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func nichePrefix(niche int) []byte {
	return fmt.Appendf([]byte{}, "niche-%04d-", niche)
}

func summaryKey(niche, generation int) []byte {
	return fmt.Appendf(nichePrefix(niche), "gen-%010d", generation)
}

// Put stores a summary, replacing any previous one for the same niche and generation.
func (s *Store) Put(summary Summary) error {
	value, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := s.db.Put(summaryKey(summary.Niche, summary.Generation), value, nil); err != nil {
		return fmt.Errorf("failed to store summary of niche %d generation %d: %w", summary.Niche, summary.Generation, err)
	}
	return nil
}

// Get returns the summary of a niche at a generation.
func (s *Store) Get(niche, generation int) (Summary, bool, error) {
	value, err := s.db.Get(summaryKey(niche, generation), nil)
	if err == leveldb.ErrNotFound {
		return Summary{}, false, nil
	}
	if err != nil {
		return Summary{}, false, err
	}
	var summary Summary
	if err := json.Unmarshal(value, &summary); err != nil {
		return Summary{}, false, fmt.Errorf("failed to decode summary of niche %d generation %d: %w", niche, generation, err)
	}
	return summary, true, nil
}

// Niche returns the stored history of a niche in generation order.
func (s *Store) Niche(niche int) ([]Summary, error) {
	iter := s.db.NewIterator(util.BytesPrefix(nichePrefix(niche)), nil)
	defer iter.Release()

	out := []Summary{}
	for iter.Next() {
		var summary Summary
		if err := json.Unmarshal(iter.Value(), &summary); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", iter.Key(), err)
		}
		out = append(out, summary)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}
