package types

// Collection names as they appear in the persisted document and on the CLI.
const (
	CasesCollection     = "cases"
	EvidenceCollection  = "evidence"
	SuspectsCollection  = "suspects"
	WitnessesCollection = "witnesses"
	TimelineCollection  = "timeline"
	DocumentsCollection = "documents"
	VehiclesCollection  = "vehicles"
	OfficersCollection  = "officers"
	IncidentsCollection = "incidents"
)

// CollectionNames lists every collection in document order.
var CollectionNames = []string{
	CasesCollection,
	EvidenceCollection,
	SuspectsCollection,
	WitnessesCollection,
	TimelineCollection,
	DocumentsCollection,
	VehiclesCollection,
	OfficersCollection,
	IncidentsCollection,
}

// Database is the whole persisted document: nine flat record collections plus
// the timestamp of the most recent successful save. The store always reads
// and writes it as one unit. A document missing a collection key (written by
// an older version) unmarshals to a nil slice, which the store treats as
// empty.
type Database struct {
	Cases       []Case          `json:"cases"`
	Evidence    []Evidence      `json:"evidence"`
	Suspects    []Suspect       `json:"suspects"`
	Witnesses   []Witness       `json:"witnesses"`
	Timeline    []TimelineEvent `json:"timeline"`
	Documents   []Document      `json:"documents"`
	Vehicles    []Vehicle       `json:"vehicles"`
	Officers    []Officer       `json:"officers"`
	Incidents   []Incident      `json:"incidents"`
	LastUpdated string          `json:"lastUpdated"`
}
