package types

// Document is a written report or note attached to a case.
type Document struct {
	Record
	CaseID  string `json:"caseId,omitempty"`
	Title   string `json:"title,omitempty"`
	Type    string `json:"type,omitempty"`
	Author  string `json:"author,omitempty"`
	Content string `json:"content,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// SearchFields returns the declared searchable values in order.
func (d Document) SearchFields() []string {
	return []string{d.Title, d.Content, d.Type, d.Author, d.Notes}
}
