package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

// Stats derives the dashboard counters from the current document. A case is
// active unless its status is exactly "closed".
func (s *Store) Stats() (types.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return types.Stats{}, err
	}

	stats := types.Stats{
		TotalCases:     len(db.Cases),
		EvidenceCount:  len(db.Evidence),
		SuspectsCount:  len(db.Suspects),
		WitnessesCount: len(db.Witnesses),
	}
	for _, c := range db.Cases {
		if c.Status == types.CaseStatusClosed {
			stats.ClosedCases++
		} else {
			stats.ActiveCases++
		}
	}
	return stats, nil
}
