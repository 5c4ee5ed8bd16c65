package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/admissions/internal/roster"
)

// Field names a sortable candidate attribute.
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldProgram
	FieldGPA
	FieldAppliedDate
)

var ErrUnknownField = errors.New("unknown sort field")

var ErrUnknownDirection = errors.New("unknown sort direction")

// Fields lists the sortable fields in column order.
func Fields() []Field {
	return []Field{FieldName, FieldProgram, FieldGPA, FieldAppliedDate}
}

// Name is the identifier used in config files and flags.
func (f Field) Name() string {
	switch f {
	case FieldName:
		return "name"
	case FieldProgram:
		return "program"
	case FieldGPA:
		return "gpa"
	case FieldAppliedDate:
		return "appliedDate"
	}
	return ""
}

// Label is the column header text.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldProgram:
		return "Program"
	case FieldGPA:
		return "GPA"
	case FieldAppliedDate:
		return "Applied Date"
	}
	return ""
}

func (f Field) String() string {
	if n := f.Name(); n != "" {
		return n
	}
	return "none"
}

// key is the typed sort value of one candidate for one field.
type key struct {
	text    string
	num     float64
	numeric bool
}

// keyOf returns the sort key for c, or false when f has no accessor.
func (f Field) keyOf(c roster.Candidate) (key, bool) {
	switch f {
	case FieldName:
		return key{text: c.Name}, true
	case FieldProgram:
		return key{text: c.Program}, true
	case FieldGPA:
		return key{num: c.GPA, numeric: true}, true
	case FieldAppliedDate:
		return key{num: float64(c.AppliedDate.Unix()), numeric: true}, true
	}
	return key{}, false
}

// ParseField resolves a field name. Matching ignores case, spaces, dashes and
// underscores so "applied_date" and "Applied Date" both resolve.
func ParseField(name string) (Field, error) {
	norm := normalizeFieldName(name)
	for _, f := range Fields() {
		if normalizeFieldName(f.Name()) == norm {
			return f, nil
		}
	}
	if s := suggestField(norm); s != "" {
		return FieldNone, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownField, name, s)
	}
	return FieldNone, fmt.Errorf("%w %q", ErrUnknownField, name)
}

func suggestField(norm string) string {
	if norm == "" {
		return ""
	}
	best, bestDist := "", 4
	for _, f := range Fields() {
		d := levenshtein.ComputeDistance(norm, normalizeFieldName(f.Name()))
		if d < bestDist {
			best, bestDist = f.Name(), d
		}
	}
	return best
}

func normalizeFieldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts asc/ascending and desc/descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w %q", ErrUnknownDirection, s)
}
