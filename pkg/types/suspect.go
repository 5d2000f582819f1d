package types

// Suspect is a person of interest. The OSINT fields (social media, IP
// addresses, movement history) are free-form text captured during an
// investigation.
type Suspect struct {
	Record
	Name             string `json:"name,omitempty"`
	Aliases          string `json:"aliases,omitempty"`
	DOB              string `json:"dob,omitempty"`
	Status           string `json:"status,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	Description      string `json:"description,omitempty"`
	SocialMedia      string `json:"socialMedia,omitempty"`
	IPAddresses      string `json:"ipAddresses,omitempty"`
	Vehicles         string `json:"vehicles,omitempty"`
	Associates       string `json:"associates,omitempty"`
	LastSeenDate     string `json:"lastSeenDate,omitempty"`
	LastSeenLocation string `json:"lastSeenLocation,omitempty"`
	MovementHistory  string `json:"movementHistory,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (s Suspect) SearchFields() []string {
	return []string{s.Name, s.Aliases, s.Address, s.Phone, s.Email, s.Description, s.Notes}
}
