package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func vehiclesOf(db *types.Database) *[]types.Vehicle { return &db.Vehicles }

// Vehicles returns every vehicle in stored order.
func (s *Store) Vehicles() ([]types.Vehicle, error) {
	return listRecords(s, vehiclesOf)
}

// Vehicle returns the vehicle with the given ID, or types.ErrNotFound.
func (s *Store) Vehicle(id string) (types.Vehicle, error) {
	return getRecord[types.Vehicle](s, vehiclesOf, id)
}

// AddVehicle stores a new vehicle and returns it with ID and timestamps
// assigned.
func (s *Store) AddVehicle(v types.Vehicle) (types.Vehicle, error) {
	return addRecord(s, vehiclesOf, v, true, nil)
}

// UpdateVehicle merges the patch over the vehicle with the given ID.
func (s *Store) UpdateVehicle(id string, patch map[string]any) (types.Vehicle, error) {
	return updateRecord[types.Vehicle](s, vehiclesOf, id, patch, nil)
}

// DeleteVehicle removes the vehicle. Deleting an absent ID succeeds.
func (s *Store) DeleteVehicle(id string) error {
	return deleteRecord[types.Vehicle](s, vehiclesOf, id)
}
