package types

// Vehicle is a vehicle of interest, not tied to a single case.
type Vehicle struct {
	Record
	Plate  string `json:"plate,omitempty"`
	VIN    string `json:"vin,omitempty"`
	Make   string `json:"make,omitempty"`
	Model  string `json:"model,omitempty"`
	Year   string `json:"year,omitempty"`
	Color  string `json:"color,omitempty"`
	Owner  string `json:"owner,omitempty"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (v Vehicle) SearchFields() []string {
	return []string{v.Plate, v.VIN, v.Make, v.Model, v.Color, v.Owner, v.Status, v.Notes}
}
