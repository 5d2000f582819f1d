package casedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func TestStatsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, types.Stats{}, stats)
}

func TestStatsCounts(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCase(types.Case{Title: "Open one", Status: "open"})
	require.NoError(t, err)
	_, err = s.AddCase(types.Case{Title: "Closed one", Status: "closed"})
	require.NoError(t, err)
	_, err = s.AddCase(types.Case{Title: "No status at all"})
	require.NoError(t, err)
	_, err = s.AddEvidence(types.Evidence{ItemNumber: "E-1"})
	require.NoError(t, err)
	_, err = s.AddEvidence(types.Evidence{ItemNumber: "E-2"})
	require.NoError(t, err)
	_, err = s.AddSuspect(types.Suspect{Name: "Jane Roe"})
	require.NoError(t, err)
	_, err = s.AddWitness(types.Witness{Name: "Sam Lee"})
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, types.Stats{
		TotalCases:     3,
		ActiveCases:    2,
		ClosedCases:    1,
		EvidenceCount:  2,
		SuspectsCount:  1,
		WitnessesCount: 1,
	}, stats)
}

func TestStatsOnlyExactClosedCounts(t *testing.T) {
	s := newTestStore(t)

	// Status matching is exact; variants count as active.
	for _, status := range []string{"Closed", "CLOSED", "closing"} {
		_, err := s.AddCase(types.Case{Status: status})
		require.NoError(t, err)
	}
	_, err := s.AddCase(types.Case{Status: "closed"})
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ClosedCases)
	assert.Equal(t, 3, stats.ActiveCases)
}
