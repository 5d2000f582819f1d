package types

// Evidence is a physical or digital evidence item attached to a case.
// Photos holds URIs managed by the upload layer; the store treats them as
// opaque strings.
type Evidence struct {
	Record
	CaseID         string   `json:"caseId,omitempty"`
	ItemNumber     string   `json:"itemNumber,omitempty"`
	Type           string   `json:"type,omitempty"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	CollectionDate string   `json:"collectionDate,omitempty"`
	CustodyChain   string   `json:"custodyChain,omitempty"`
	Storage        string   `json:"storage,omitempty"`
	Officer        string   `json:"officer,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Photos         []string `json:"photos,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (e Evidence) SearchFields() []string {
	return []string{e.ItemNumber, e.Description, e.Type, e.Location, e.Officer, e.Notes}
}
