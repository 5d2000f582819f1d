package casedb

import (
	"strings"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// searchable is satisfied by every record type with a declared search field
// set.
type searchable interface {
	SearchFields() []string
}

// Search runs a case-insensitive substring scan over the declared field set
// of each searchable collection and returns the hits grouped by collection,
// in stored order. Collections with no hits come back as empty slices, never
// nil. The scan reads the whole document once; no index is kept.
func (s *Store) Search(query string) (types.SearchResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return types.SearchResults{}, err
	}

	q := strings.ToLower(query)
	return types.SearchResults{
		Cases:     matchRecords(db.Cases, q),
		Evidence:  matchRecords(db.Evidence, q),
		Suspects:  matchRecords(db.Suspects, q),
		Witnesses: matchRecords(db.Witnesses, q),
		Timeline:  matchRecords(db.Timeline, q),
		Documents: matchRecords(db.Documents, q),
		Vehicles:  matchRecords(db.Vehicles, q),
	}, nil
}

// matchRecords filters recs to those whose declared fields contain the
// already-lowercased query.
func matchRecords[T searchable](recs []T, query string) []T {
	matched := make([]T, 0)
	for _, r := range recs {
		if matchesQuery(r, query) {
			matched = append(matched, r)
		}
	}
	return matched
}

// matchesQuery reports whether any non-empty declared field contains the
// query. Empty fields never match, so an empty query matches exactly the
// records carrying at least one non-empty declared field.
func matchesQuery(r searchable, query string) bool {
	for _, v := range r.SearchFields() {
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}
