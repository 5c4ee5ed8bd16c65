// Package selection tracks which candidate, if any, is open in the detail view.
package selection

import "github.com/jask/admissions/internal/roster"

// Controller holds at most one open candidate. The zero value is closed.
type Controller struct {
	open      bool
	candidate roster.Candidate
}

// Open makes c the open candidate, replacing any previous one.
func (s *Controller) Open(c roster.Candidate) {
	s.candidate = c
	s.open = true
}

// Close clears the selection. Closing an already closed controller does nothing.
func (s *Controller) Close() {
	s.candidate = roster.Candidate{}
	s.open = false
}

// Current returns the open candidate.
func (s Controller) Current() (roster.Candidate, bool) {
	return s.candidate, s.open
}

func (s Controller) IsOpen() bool { return s.open }
