package types

// Incident is a reported incident that may or may not have been promoted to
// a case. Incidents are not searchable.
type Incident struct {
	Record
	IncidentNumber string `json:"incidentNumber,omitempty"`
	Type           string `json:"type,omitempty"`
	IncidentDate   string `json:"incidentDate,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
