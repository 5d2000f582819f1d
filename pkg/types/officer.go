package types

// Officer is a member of the investigating team. Officers are referenced by
// name from other records and are not searchable.
type Officer struct {
	Record
	Name        string `json:"name,omitempty"`
	BadgeNumber string `json:"badgeNumber,omitempty"`
	Rank        string `json:"rank,omitempty"`
	Department  string `json:"department,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
