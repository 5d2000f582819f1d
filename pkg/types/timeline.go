package types

// TimelineEvent is a dated entry in a case's timeline. The timeline
// collection is kept sorted ascending by DateTime after every mutation.
// DateTime is caller-supplied and not validated; events whose DateTime does
// not parse sort after all parseable events.
type TimelineEvent struct {
	Record
	CaseID      string `json:"caseId,omitempty"`
	DateTime    string `json:"dateTime,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Officer     string `json:"officer,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (t TimelineEvent) SearchFields() []string {
	return []string{t.Description, t.Location, t.Officer, t.Notes}
}
