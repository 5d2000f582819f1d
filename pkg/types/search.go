package types

// SearchResults groups search hits by collection. Every key is always
// present with a non-nil slice so callers and JSON consumers never see a
// missing collection. Officers and incidents are not searched.
type SearchResults struct {
	Cases     []Case          `json:"cases"`
	Evidence  []Evidence      `json:"evidence"`
	Suspects  []Suspect       `json:"suspects"`
	Witnesses []Witness       `json:"witnesses"`
	Timeline  []TimelineEvent `json:"timeline"`
	Documents []Document      `json:"documents"`
	Vehicles  []Vehicle       `json:"vehicles"`
}

// Stats holds the dashboard counters derived from the current document.
type Stats struct {
	TotalCases     int `json:"totalCases"`
	ActiveCases    int `json:"activeCases"`
	ClosedCases    int `json:"closedCases"`
	EvidenceCount  int `json:"evidenceCount"`
	SuspectsCount  int `json:"suspectsCount"`
	WitnessesCount int `json:"witnessesCount"`
}
