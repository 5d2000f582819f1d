package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func suspectsOf(db *types.Database) *[]types.Suspect { return &db.Suspects }

// Suspects returns every suspect in stored order.
func (s *Store) Suspects() ([]types.Suspect, error) {
	return listRecords(s, suspectsOf)
}

// Suspect returns the suspect with the given ID, or types.ErrNotFound.
func (s *Store) Suspect(id string) (types.Suspect, error) {
	return getRecord[types.Suspect](s, suspectsOf, id)
}

// AddSuspect stores a new suspect and returns it with ID and timestamps
// assigned.
func (s *Store) AddSuspect(sp types.Suspect) (types.Suspect, error) {
	return addRecord(s, suspectsOf, sp, true, nil)
}

// UpdateSuspect merges the patch over the suspect with the given ID.
func (s *Store) UpdateSuspect(id string, patch map[string]any) (types.Suspect, error) {
	return updateRecord[types.Suspect](s, suspectsOf, id, patch, nil)
}

// DeleteSuspect removes the suspect. Deleting an absent ID succeeds.
func (s *Store) DeleteSuspect(id string) error {
	return deleteRecord[types.Suspect](s, suspectsOf, id)
}
