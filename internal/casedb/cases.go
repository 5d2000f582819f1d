package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func casesOf(db *types.Database) *[]types.Case { return &db.Cases }

// Cases returns every case in stored order.
func (s *Store) Cases() ([]types.Case, error) {
	return listRecords(s, casesOf)
}

// Case returns the case with the given ID, or types.ErrNotFound.
func (s *Store) Case(id string) (types.Case, error) {
	return getRecord[types.Case](s, casesOf, id)
}

// AddCase stores a new case and returns it with ID and timestamps assigned.
func (s *Store) AddCase(c types.Case) (types.Case, error) {
	return addRecord(s, casesOf, c, true, nil)
}

// UpdateCase merges the patch over the case with the given ID.
func (s *Store) UpdateCase(id string, patch map[string]any) (types.Case, error) {
	return updateRecord[types.Case](s, casesOf, id, patch, nil)
}

// DeleteCase removes the case and cascades to every evidence, timeline, and
// document record referencing it, in one document rewrite. Partial cascade
// is never observable. Deleting an absent ID succeeds; an empty ID is
// rejected so the cascade cannot sweep up records with no case reference.
func (s *Store) DeleteCase(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}

	db.Cases = dropByID[types.Case](db.Cases, id)
	db.Evidence = dropByCase(db.Evidence, id, func(e types.Evidence) string { return e.CaseID })
	db.Timeline = dropByCase(db.Timeline, id, func(t types.TimelineEvent) string { return t.CaseID })
	db.Documents = dropByCase(db.Documents, id, func(d types.Document) string { return d.CaseID })
	return s.save(db)
}

// dropByCase returns recs without any record whose caseId matches.
func dropByCase[T any](recs []T, caseID string, ref func(T) string) []T {
	kept := make([]T, 0, len(recs))
	for _, r := range recs {
		if ref(r) != caseID {
			kept = append(kept, r)
		}
	}
	return kept
}
