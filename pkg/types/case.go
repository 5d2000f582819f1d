package types

// Case statuses used by the dashboard counters. Status is free-form on
// write; only "closed" carries meaning (everything else counts as active).
const CaseStatusClosed = "closed"

// Case is an investigation case, the root entity the other collections hang
// off via their CaseID soft foreign key.
type Case struct {
	Record
	CaseNumber  string `json:"caseNumber,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Officer     string `json:"officer,omitempty"`
	Date        string `json:"date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (c Case) SearchFields() []string {
	return []string{c.CaseNumber, c.Title, c.Description, c.Location, c.Status, c.Officer}
}
