package catalog

import (
	"strings"
	"testing"

	"github.com/securecheck/securecheck-webserver/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_OrderAndUniqueness(t *testing.T) {
	labels := Labels()
	require.Len(t, labels, 20)
	assert.Equal(t, "Top 10 vehicles involved in drug-related stops", labels[0])
	assert.Equal(t, "Top 5 Violations with Highest Arrest Rates", labels[len(labels)-1])

	seen := make(map[string]bool)
	for _, label := range labels {
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
}

func TestLookup_ReturnsRegisteredSQL(t *testing.T) {
	for _, entry := range entries {
		got, err := Lookup(entry.Label)
		require.NoError(t, err)
		assert.Equal(t, entry.SQL, got.SQL)

		// Selecting the same label twice yields the same statement.
		again, err := Lookup(entry.Label)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("Which drivers wore hats")
	require.ErrorIs(t, err, ErrUnknownQuery)
}

func TestEntries_AreParameterless(t *testing.T) {
	for _, entry := range Entries() {
		assert.NotContains(t, entry.SQL, "?", entry.Label)
		assert.NotContains(t, entry.SQL, "%s", entry.Label)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(entry.SQL), "SELECT"), entry.Label)
		assert.Contains(t, entry.SQL, "traffic_project", entry.Label)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	out := Entries()
	out[0].SQL = "DELETE FROM traffic_project"

	entry, err := Lookup(out[0].Label)
	require.NoError(t, err)
	assert.NotEqual(t, "DELETE FROM traffic_project", entry.SQL)
}

func TestEntries_ArrestQueriesMatchOutcomeValue(t *testing.T) {
	var arrestQueries int
	for _, entry := range Entries() {
		if strings.Contains(strings.ToLower(entry.Label), "arrest") {
			arrestQueries++
			assert.Contains(t, entry.SQL, "'"+models.OutcomeArrest+"'", entry.Label)
		}
	}
	assert.NotZero(t, arrestQueries)
}
