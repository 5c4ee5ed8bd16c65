// Package table derives the visible candidate list from the immutable roster,
// the search text and the active sort.
package table

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jask/admissions/internal/roster"
)

// Locale is the single locale used for text ordering.
var Locale = language.AmericanEnglish

// State is the search and sort input of the candidate table.
type State struct {
	Search string
	Field  Field
	Dir    Direction
}

// NewState returns a state with an empty search.
func NewState(f Field, d Direction) State {
	return State{Field: f, Dir: d}
}

// Toggle applies the header activation policy: the active field flips its
// direction, any other field becomes active in ascending order.
func (s *State) Toggle(f Field) {
	if f == s.Field {
		s.Dir = s.Dir.Flip()
		return
	}
	s.Field = f
	s.Dir = Ascending
}

// Apply filters then sorts cands into a new slice. cands is never modified.
func (s State) Apply(cands []roster.Candidate) []roster.Candidate {
	out := Filter(cands, s.Search)
	Sort(out, s.Field, s.Dir)
	return out
}

// Filter keeps candidates whose name or program contains search, ignoring case.
func Filter(cands []roster.Candidate, search string) []roster.Candidate {
	out := make([]roster.Candidate, 0, len(cands))
	for _, c := range cands {
		if Matches(c, search) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether c passes the search filter.
func Matches(c roster.Candidate, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Program), q)
}

// Sort orders cands in place by f. The sort is stable so ties keep their
// input order. A field without an accessor leaves the order unchanged.
func Sort(cands []roster.Candidate, f Field, d Direction) {
	col := collate.New(Locale)
	slices.SortStableFunc(cands, func(a, b roster.Candidate) int {
		c := compare(col, f, a, b)
		if d == Descending {
			return -c
		}
		return c
	})
}

func compare(col *collate.Collator, f Field, a, b roster.Candidate) int {
	ka, okA := f.keyOf(a)
	kb, okB := f.keyOf(b)
	if !okA || !okB {
		return 0
	}
	switch {
	case !ka.numeric && !kb.numeric:
		return col.CompareString(ka.text, kb.text)
	case ka.numeric && kb.numeric:
		return cmp.Compare(ka.num, kb.num)
	}
	return 0
}
