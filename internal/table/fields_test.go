package table

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/collate"
)

func collatorForTest() *collate.Collator { return collate.New(Locale) }

func TestParseFieldAcceptsAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"name", FieldName},
		{"Program", FieldProgram},
		{"GPA", FieldGPA},
		{"appliedDate", FieldAppliedDate},
		{"applied_date", FieldAppliedDate},
		{"Applied Date", FieldAppliedDate},
		{"applied-date", FieldAppliedDate},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if err != nil {
			t.Fatalf("ParseField(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseField(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFieldSuggestsNearestName(t *testing.T) {
	_, err := ParseField("gpaa")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	if !strings.Contains(err.Error(), `did you mean "gpa"`) {
		t.Errorf("missing suggestion: %v", err)
	}

	_, err = ParseField("applied_dat")
	if err == nil || !strings.Contains(err.Error(), `"appliedDate"`) {
		t.Errorf("expected appliedDate suggestion, got %v", err)
	}
}

func TestParseFieldWithoutCloseMatch(t *testing.T) {
	_, err := ParseField("shoe size")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("unexpected suggestion: %v", err)
	}
}

func TestFieldNamesRoundTrip(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(f.Name())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v", f.Name(), got, err)
		}
		if f.Label() == "" {
			t.Errorf("field %v has no label", f)
		}
	}
	if FieldNone.String() != "none" {
		t.Errorf("FieldNone.String() = %q", FieldNone.String())
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"asc": Ascending, "ASC": Ascending, "ascending": Ascending, "desc": Descending, " Descending ": Descending} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(sideways) err = %v", err)
	}
}
