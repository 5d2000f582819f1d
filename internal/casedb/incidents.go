package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func incidentsOf(db *types.Database) *[]types.Incident { return &db.Incidents }

// Incidents returns every incident in stored order.
func (s *Store) Incidents() ([]types.Incident, error) {
	return listRecords(s, incidentsOf)
}

// Incident returns the incident with the given ID, or types.ErrNotFound.
func (s *Store) Incident(id string) (types.Incident, error) {
	return getRecord[types.Incident](s, incidentsOf, id)
}

// AddIncident stores a new incident and returns it with ID and timestamps
// assigned.
func (s *Store) AddIncident(in types.Incident) (types.Incident, error) {
	return addRecord(s, incidentsOf, in, true, nil)
}

// UpdateIncident merges the patch over the incident with the given ID.
func (s *Store) UpdateIncident(id string, patch map[string]any) (types.Incident, error) {
	return updateRecord[types.Incident](s, incidentsOf, id, patch, nil)
}

// DeleteIncident removes the incident. Deleting an absent ID succeeds.
func (s *Store) DeleteIncident(id string) error {
	return deleteRecord[types.Incident](s, incidentsOf, id)
}
