package roster

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

var (
	ErrDuplicateID     = errors.New("duplicate candidate id")
	ErrDuplicateStamp  = errors.New("duplicate stamp id")
	ErrGPAOutOfRange   = errors.New("gpa out of range")
	ErrUnknownCategory = errors.New("unknown stamp category")
)

// Validate checks the invariants every loaded dataset must hold. Unknown
// statuses are allowed through; the view renders them with the pending tone.
func Validate(cands []Candidate) error {
	seen := make(map[int]struct{}, len(cands))
	for _, c := range cands {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("candidate %d: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
		if math.IsNaN(c.GPA) || c.GPA < MinGPA || c.GPA > MaxGPA {
			return fmt.Errorf("candidate %d gpa %.2f: %w", c.ID, c.GPA, ErrGPAOutOfRange)
		}
		stamps := make(map[int]struct{}, len(c.Stamps))
		for _, s := range c.Stamps {
			if _, ok := stamps[s.ID]; ok {
				return fmt.Errorf("candidate %d stamp %d: %w", c.ID, s.ID, ErrDuplicateStamp)
			}
			stamps[s.ID] = struct{}{}
			if _, ok := ParseCategory(string(s.Category)); !ok {
				return fmt.Errorf("candidate %d stamp %d category %q: %w", c.ID, s.ID, s.Category, ErrUnknownCategory)
			}
		}
	}
	return nil
}

// ByID returns the candidate with the given id.
func ByID(cands []Candidate, id int) (Candidate, bool) {
	for _, c := range cands {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// CountByStatus tallies candidates per status. Unknown statuses count as pending.
func CountByStatus(cands []Candidate) map[Status]int {
	out := make(map[Status]int, 4)
	for _, c := range cands {
		s := c.Status
		if !s.Known() {
			s = StatusPending
		}
		out[s]++
	}
	return out
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimFunc(a, unicode.IsSpace), strings.TrimFunc(b, unicode.IsSpace))
}
