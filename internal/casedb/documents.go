package casedb

import "github.com/mesh-intelligence/casefile/pkg/types"

func documentsOf(db *types.Database) *[]types.Document { return &db.Documents }

// Documents returns every document in stored order.
func (s *Store) Documents() ([]types.Document, error) {
	return listRecords(s, documentsOf)
}

// Document returns the document with the given ID, or types.ErrNotFound.
func (s *Store) Document(id string) (types.Document, error) {
	return getRecord[types.Document](s, documentsOf, id)
}

// DocumentsByCase returns the documents referencing the given case, in
// stored order.
func (s *Store) DocumentsByCase(caseID string) ([]types.Document, error) {
	docs, err := s.Documents()
	if err != nil {
		return nil, err
	}
	matched := make([]types.Document, 0, len(docs))
	for _, d := range docs {
		if d.CaseID == caseID {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// AddDocument stores a new document and returns it with ID and timestamps
// assigned.
func (s *Store) AddDocument(d types.Document) (types.Document, error) {
	return addRecord(s, documentsOf, d, true, nil)
}

// UpdateDocument merges the patch over the document with the given ID.
func (s *Store) UpdateDocument(id string, patch map[string]any) (types.Document, error) {
	return updateRecord[types.Document](s, documentsOf, id, patch, nil)
}

// DeleteDocument removes the document. Deleting an absent ID succeeds.
func (s *Store) DeleteDocument(id string) error {
	return deleteRecord[types.Document](s, documentsOf, id)
}
