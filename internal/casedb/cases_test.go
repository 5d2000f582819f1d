package casedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func TestCaseCRUD(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddCase(types.Case{
		CaseNumber: "CASE-42",
		Title:      "Warehouse theft",
		Status:     "open",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Case(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := s.UpdateCase(created.ID, map[string]any{"status": "closed"})
	require.NoError(t, err)
	assert.Equal(t, "closed", updated.Status)
	assert.Equal(t, "Warehouse theft", updated.Title, "unpatched fields survive")
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, s.DeleteCase(created.ID))
	_, err = s.Case(created.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEmptyIDRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Case("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
	_, err = s.UpdateCase("", map[string]any{"status": "closed"})
	assert.ErrorIs(t, err, types.ErrInvalidID)
	assert.ErrorIs(t, s.DeleteCase(""), types.ErrInvalidID)
	assert.ErrorIs(t, s.DeleteEvidence(""), types.ErrInvalidID)
}

func TestDeleteCaseEmptyIDDoesNotCascade(t *testing.T) {
	s := newTestStore(t)

	orphan, err := s.AddDocument(types.Document{Title: "No case reference"})
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteCase(""), types.ErrInvalidID)
	_, err = s.Document(orphan.ID)
	assert.NoError(t, err)
}

func TestUpdateCaseNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCase("no-such-id", map[string]any{"status": "closed"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateKeepsCoreImmutable(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddCase(types.Case{Title: "Immutable core"})
	require.NoError(t, err)

	updated, err := s.UpdateCase(created.ID, map[string]any{
		"id":        "other",
		"createdAt": "2000-01-01T00:00:00.000Z",
		"title":     "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Renamed", updated.Title)
	assert.NotEmpty(t, updated.UpdatedAt)

	// The stored record matches the returned one.
	got, err := s.Case(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateDropsUnknownPatchKeys(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddCase(types.Case{Title: "Schema-bound"})
	require.NoError(t, err)

	updated, err := s.UpdateCase(created.ID, map[string]any{
		"title":        "Still schema-bound",
		"noSuchField":  "dropped",
		"anotherExtra": 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Still schema-bound", updated.Title)
}

func TestDeleteCaseCascades(t *testing.T) {
	s := newTestStore(t)

	kept, err := s.AddCase(types.Case{Title: "Unrelated case"})
	require.NoError(t, err)
	doomed, err := s.AddCase(types.Case{Title: "Doomed case"})
	require.NoError(t, err)

	e1, err := s.AddEvidence(types.Evidence{CaseID: doomed.ID, ItemNumber: "E-1"})
	require.NoError(t, err)
	e2, err := s.AddEvidence(types.Evidence{CaseID: kept.ID, ItemNumber: "E-2"})
	require.NoError(t, err)
	t1, err := s.AddTimelineEvent(types.TimelineEvent{CaseID: doomed.ID, DateTime: "2024-01-01"})
	require.NoError(t, err)
	d1, err := s.AddDocument(types.Document{CaseID: doomed.ID, Title: "Doomed report"})
	require.NoError(t, err)
	d2, err := s.AddDocument(types.Document{CaseID: kept.ID, Title: "Kept report"})
	require.NoError(t, err)
	orphan, err := s.AddDocument(types.Document{Title: "No case at all"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCase(doomed.ID))

	_, err = s.Case(doomed.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.EvidenceItem(e1.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.TimelineEvent(t1.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.Document(d1.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Records tied to other cases, or to no case, survive.
	_, err = s.Case(kept.ID)
	assert.NoError(t, err)
	_, err = s.EvidenceItem(e2.ID)
	assert.NoError(t, err)
	_, err = s.Document(d2.ID)
	assert.NoError(t, err)
	_, err = s.Document(orphan.ID)
	assert.NoError(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddCase(types.Case{Title: "Survivor"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCase("nonexistent-id"))
	require.NoError(t, s.DeleteSuspect("nonexistent-id"))

	cases, err := s.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, created.ID, cases[0].ID)

	// Deleting twice succeeds both times.
	require.NoError(t, s.DeleteCase(created.ID))
	require.NoError(t, s.DeleteCase(created.ID))
}

func TestByCaseFilters(t *testing.T) {
	s := newTestStore(t)

	c1, err := s.AddCase(types.Case{Title: "One"})
	require.NoError(t, err)
	c2, err := s.AddCase(types.Case{Title: "Two"})
	require.NoError(t, err)

	_, err = s.AddEvidence(types.Evidence{CaseID: c1.ID, ItemNumber: "E-1"})
	require.NoError(t, err)
	_, err = s.AddEvidence(types.Evidence{CaseID: c2.ID, ItemNumber: "E-2"})
	require.NoError(t, err)
	_, err = s.AddTimelineEvent(types.TimelineEvent{CaseID: c1.ID, DateTime: "2024-01-01"})
	require.NoError(t, err)
	_, err = s.AddDocument(types.Document{CaseID: c1.ID, Title: "Report"})
	require.NoError(t, err)

	evidence, err := s.EvidenceByCase(c1.ID)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, "E-1", evidence[0].ItemNumber)

	timeline, err := s.TimelineByCase(c1.ID)
	require.NoError(t, err)
	assert.Len(t, timeline, 1)

	docs, err := s.DocumentsByCase(c2.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NotNil(t, docs)
}
