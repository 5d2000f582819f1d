package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func witnessesOf(db *types.Database) *[]types.Witness { return &db.Witnesses }

// Witnesses returns every witness in stored order.
func (s *Store) Witnesses() ([]types.Witness, error) {
	return listRecords(s, witnessesOf)
}

// Witness returns the witness with the given ID, or types.ErrNotFound.
func (s *Store) Witness(id string) (types.Witness, error) {
	return getRecord[types.Witness](s, witnessesOf, id)
}

// AddWitness stores a new witness and returns it with ID and timestamps
// assigned.
func (s *Store) AddWitness(w types.Witness) (types.Witness, error) {
	return addRecord(s, witnessesOf, w, true, nil)
}

// UpdateWitness merges the patch over the witness with the given ID.
func (s *Store) UpdateWitness(id string, patch map[string]any) (types.Witness, error) {
	return updateRecord[types.Witness](s, witnessesOf, id, patch, nil)
}

// DeleteWitness removes the witness. Deleting an absent ID succeeds.
func (s *Store) DeleteWitness(id string) error {
	return deleteRecord[types.Witness](s, witnessesOf, id)
}
