package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/internal/casedb"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

func newHelperStore(t *testing.T) *casedb.Store {
	t.Helper()
	s, err := casedb.Open(types.Config{DataDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestAddToCollectionRoundTrip(t *testing.T) {
	s := newHelperStore(t)

	id, rec, err := addToCollection(s, types.CasesCollection, []byte(`{"title":"From JSON","status":"open"}`))
	require.NoError(t, err)
	require.NotEmpty(t, id)
	created, ok := rec.(types.Case)
	require.True(t, ok)
	assert.Equal(t, "From JSON", created.Title)

	got, err := getFromCollection(s, types.CasesCollection, id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestAddToCollectionBadJSON(t *testing.T) {
	s := newHelperStore(t)

	_, _, err := addToCollection(s, types.CasesCollection, []byte(`{not json`))
	assert.Error(t, err)
}

func TestUnknownCollection(t *testing.T) {
	s := newHelperStore(t)

	_, _, err := addToCollection(s, "briefcases", []byte(`{}`))
	assert.ErrorIs(t, err, types.ErrUnknownCollection)

	_, err = getFromCollection(s, "briefcases", "some-id")
	assert.ErrorIs(t, err, types.ErrUnknownCollection)

	_, err = updateInCollection(s, "briefcases", "some-id", map[string]any{})
	assert.ErrorIs(t, err, types.ErrUnknownCollection)

	err = deleteFromCollection(s, "briefcases", "some-id")
	assert.ErrorIs(t, err, types.ErrUnknownCollection)
}

func TestUpdateAndDeleteDispatch(t *testing.T) {
	s := newHelperStore(t)

	id, _, err := addToCollection(s, types.VehiclesCollection, []byte(`{"plate":"ABC-999"}`))
	require.NoError(t, err)

	rec, err := updateInCollection(s, types.VehiclesCollection, id, map[string]any{"color": "red"})
	require.NoError(t, err)
	updated, ok := rec.(types.Vehicle)
	require.True(t, ok)
	assert.Equal(t, "red", updated.Color)

	require.NoError(t, deleteFromCollection(s, types.VehiclesCollection, id))
	_, err = getFromCollection(s, types.VehiclesCollection, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
