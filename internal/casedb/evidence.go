package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func evidenceOf(db *types.Database) *[]types.Evidence { return &db.Evidence }

// Evidence returns every evidence item in stored order.
func (s *Store) Evidence() ([]types.Evidence, error) {
	return listRecords(s, evidenceOf)
}

// EvidenceItem returns the evidence item with the given ID, or
// types.ErrNotFound.
func (s *Store) EvidenceItem(id string) (types.Evidence, error) {
	return getRecord[types.Evidence](s, evidenceOf, id)
}

// EvidenceByCase returns the evidence items referencing the given case, in
// stored order.
func (s *Store) EvidenceByCase(caseID string) ([]types.Evidence, error) {
	items, err := s.Evidence()
	if err != nil {
		return nil, err
	}
	matched := make([]types.Evidence, 0, len(items))
	for _, e := range items {
		if e.CaseID == caseID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// AddEvidence stores a new evidence item and returns it with ID and
// timestamps assigned.
func (s *Store) AddEvidence(e types.Evidence) (types.Evidence, error) {
	return addRecord(s, evidenceOf, e, true, nil)
}

// UpdateEvidence merges the patch over the evidence item with the given ID.
func (s *Store) UpdateEvidence(id string, patch map[string]any) (types.Evidence, error) {
	return updateRecord[types.Evidence](s, evidenceOf, id, patch, nil)
}

// DeleteEvidence removes the evidence item. Deleting an absent ID succeeds.
func (s *Store) DeleteEvidence(id string) error {
	return deleteRecord[types.Evidence](s, evidenceOf, id)
}
