// Package search filters catalogue identifiers by a free-text query.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// Filter yields the ids matching query, in input order.
//
// An empty query yields every id. Otherwise an id matches when the
// lower-cased query is a substring of the lower-cased raw id, the id without
// its namespace, or format(id). The sequence is lazy and can be ranged over
// more than once.
func Filter(query string, ids iter.Seq[string], format func(string) string) iter.Seq[string] {
	if query == "" {
		return ids
	}

	return func(yield func(string) bool) {
		// one caser per pass; casers are not safe for concurrent use
		lower := cases.Lower(language.Und)
		needle := lower.String(query)

		for id := range ids {
			if !matches(lower, needle, id, format) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

func matches(lower cases.Caser, needle, id string, format func(string) string) bool {
	raw := lower.String(id)
	if strings.Contains(raw, needle) {
		return true
	}
	if strings.Contains(domain.StripNamespace(raw), needle) {
		return true
	}
	if format == nil {
		return false
	}
	return strings.Contains(lower.String(format(id)), needle)
}

// Collect gathers up to limit ids from seq. A limit of zero or less collects everything.
func Collect(seq iter.Seq[string], limit int) []string {
	out := []string{}
	for id := range seq {
		out = append(out, id)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
