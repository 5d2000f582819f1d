package casedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func TestMergePatchOverlaysFields(t *testing.T) {
	base := types.Case{
		Title:  "Original title",
		Status: "open",
		Notes:  "keep me",
	}

	merged, err := mergePatch(base, map[string]any{
		"title":  "Patched title",
		"status": "closed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Patched title", merged.Title)
	assert.Equal(t, "closed", merged.Status)
	assert.Equal(t, "keep me", merged.Notes)
}

func TestMergePatchSkipsCoreKeys(t *testing.T) {
	base := types.Case{Title: "Fixed core"}
	base.ID = "original-id"
	base.CreatedAt = "2024-01-01T00:00:00.000Z"

	merged, err := mergePatch(base, map[string]any{
		"id":        "smuggled-id",
		"createdAt": "1999-12-31T00:00:00.000Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "original-id", merged.ID)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", merged.CreatedAt)
}

func TestMergePatchDropsUnknownKeys(t *testing.T) {
	merged, err := mergePatch(types.Case{Title: "Lean"}, map[string]any{
		"notAField": "vanishes",
		"title":     "Still lean",
	})
	require.NoError(t, err)
	assert.Equal(t, "Still lean", merged.Title)
}

func TestMergePatchClearsWithEmptyValue(t *testing.T) {
	merged, err := mergePatch(types.Case{Title: "Filled", Notes: "soon gone"}, map[string]any{
		"notes": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Filled", merged.Title)
	assert.Empty(t, merged.Notes)
}

func TestMergePatchWrongValueType(t *testing.T) {
	_, err := mergePatch(types.Case{Title: "Typed"}, map[string]any{
		"title": 12,
	})
	assert.Error(t, err)
}

func TestDropByID(t *testing.T) {
	recs := make([]types.Case, 3)
	for i, id := range []string{"a", "b", "c"} {
		recs[i].ID = id
	}

	kept := dropByID[types.Case](recs, "b")
	require.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].ID)
	assert.Equal(t, "c", kept[1].ID)

	assert.Len(t, dropByID[types.Case](recs, "missing"), 3)
	assert.Empty(t, dropByID[types.Case](nil, "a"))
}
