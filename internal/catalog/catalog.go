// Package catalog holds the fixed set of analytical questions the dashboard can answer.
// Each question is bound to one parameterless SQL statement that is executed verbatim.
package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownQuery = errors.New("unknown catalog query")

// Entry is a labelled, parameterless SQL statement.
type Entry struct {
	Label string `json:"label"`
	SQL   string `json:"sql"`
}

// Labels returns the catalog labels in display order.
func Labels() []string {
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	return labels
}

// Entries returns a copy of the catalog in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry registered for label.
func Lookup(label string) (Entry, error) {
	for _, entry := range entries {
		if entry.Label == label {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownQuery, label)
}
