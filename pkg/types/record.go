package types

// Record is the core shared by every collection entry. It is embedded in the
// concrete schema types so its fields serialize inline.
//
// ID is assigned at creation and never changes or gets reused. CreatedAt is
// stamped once at creation. UpdatedAt is refreshed on every update; timeline
// events gain it only on their first update, so it is omitted when empty.
// Timestamps are ISO-8601 strings rather than time.Time so documents written
// by older versions round-trip without reformatting.
type Record struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Meta returns the embedded record core. The store uses it to stamp IDs and
// timestamps through a generic accessor.
func (r *Record) Meta() *Record {
	return r
}
