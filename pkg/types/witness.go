package types

// Witness is a person who gave a statement.
type Witness struct {
	Record
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Statement     string `json:"statement,omitempty"`
	StatementDate string `json:"statementDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (w Witness) SearchFields() []string {
	return []string{w.Name, w.Address, w.Phone, w.Email, w.Statement, w.Notes}
}
