package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func officersOf(db *types.Database) *[]types.Officer { return &db.Officers }

// Officers returns every officer in stored order.
func (s *Store) Officers() ([]types.Officer, error) {
	return listRecords(s, officersOf)
}

// Officer returns the officer with the given ID, or types.ErrNotFound.
func (s *Store) Officer(id string) (types.Officer, error) {
	return getRecord[types.Officer](s, officersOf, id)
}

// AddOfficer stores a new officer and returns it with ID and timestamps
// assigned.
func (s *Store) AddOfficer(o types.Officer) (types.Officer, error) {
	return addRecord(s, officersOf, o, true, nil)
}

// UpdateOfficer merges the patch over the officer with the given ID.
func (s *Store) UpdateOfficer(id string, patch map[string]any) (types.Officer, error) {
	return updateRecord[types.Officer](s, officersOf, id, patch, nil)
}

// DeleteOfficer removes the officer. Deleting an absent ID succeeds.
func (s *Store) DeleteOfficer(id string) error {
	return deleteRecord[types.Officer](s, officersOf, id)
}
