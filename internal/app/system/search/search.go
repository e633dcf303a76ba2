// Package search filters in-memory record snapshots by free-text queries.
//
// Matching is case-insensitive substring containment over a per-record set
// of stringified fields. The two listing surfaces historically diverged on
// term semantics (donations required every term, deliveries any term), so
// the policy is a parameter rather than two implementations.
package search

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Mode selects how query terms combine.
type Mode int

const (
	// MatchAll keeps a record only when every term appears in at least
	// one searchable field.
	MatchAll Mode = iota
	// MatchAny keeps a record when at least one term appears in at least
	// one searchable field.
	MatchAny
)

// Filter returns the records matching query, preserving input order. An
// empty or whitespace-only query returns records unmodified. fields
// extracts the searchable strings from a record.
func Filter[T any](records []T, query string, mode Mode, fields func(T) []string) []T {
	terms := strings.Fields(text.Fold(query))
	if len(terms) == 0 {
		return records
	}

	var out []T
	for _, rec := range records {
		folded := make([]string, 0, 8)
		for _, f := range fields(rec) {
			folded = append(folded, text.Fold(f))
		}
		if matches(folded, terms, mode) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(fields, terms []string, mode Mode) bool {
	for _, term := range terms {
		hit := false
		for _, f := range fields {
			if strings.Contains(f, term) {
				hit = true
				break
			}
		}
		switch mode {
		case MatchAll:
			if !hit {
				return false
			}
		case MatchAny:
			if hit {
				return true
			}
		}
	}
	return mode == MatchAll
}
