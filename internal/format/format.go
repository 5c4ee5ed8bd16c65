// Package format holds the en-US display formatting shared by the TUI, the
// list command and the markdown export.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// DisplayDateLayout renders as "Jan 3, 2025".
const DisplayDateLayout = "Jan 2, 2006"

// Date formats a calendar date. The zero time renders as "-".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DisplayDateLayout)
}

// GPAShort is the table form with one decimal.
func GPAShort(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', 1, 64)
}

// GPALong is the detail form with two decimals.
func GPALong(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', 2, 64)
}

// Results renders the result counter, e.g. "1 result", "4 results".
func Results(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// GPABand buckets a GPA for colouring.
type GPABand int

const (
	GPALow GPABand = iota
	GPAMid
	GPAHigh
)

// BandOf returns GPAHigh from 3.7, GPAMid from 3.0, GPALow below.
func BandOf(gpa float64) GPABand {
	switch {
	case gpa >= 3.7:
		return GPAHigh
	case gpa >= 3.0:
		return GPAMid
	}
	return GPALow
}
