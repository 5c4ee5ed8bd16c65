package roster

import (
	"errors"
	"math"
	"testing"
)

func TestSampleIsValid(t *testing.T) {
	cands := Sample()
	if len(cands) != 10 {
		t.Fatalf("sample size = %d, want 10", len(cands))
	}
	if err := Validate(cands); err != nil {
		t.Fatalf("Validate(sample): %v", err)
	}
	for _, c := range cands {
		if len(c.Stamps) != 0 {
			t.Errorf("candidate %d has %d stamps, want none", c.ID, len(c.Stamps))
		}
	}
}

func TestSampleReturnsFreshSlice(t *testing.T) {
	a := Sample()
	a[0].Name = "changed"
	if b := Sample(); b[0].Name != "Priya Nair" {
		t.Fatalf("Sample aliased previous result: %q", b[0].Name)
	}
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name  string
		cands []Candidate
		want  error
	}{
		{
			name:  "duplicate id",
			cands: []Candidate{{ID: 1}, {ID: 1}},
			want:  ErrDuplicateID,
		},
		{
			name:  "gpa above scale",
			cands: []Candidate{{ID: 1, GPA: 4.3}},
			want:  ErrGPAOutOfRange,
		},
		{
			name:  "negative gpa",
			cands: []Candidate{{ID: 1, GPA: -0.1}},
			want:  ErrGPAOutOfRange,
		},
		{
			name:  "nan gpa",
			cands: []Candidate{{ID: 1, GPA: math.NaN()}},
			want:  ErrGPAOutOfRange,
		},
		{
			name:  "infinite gpa",
			cands: []Candidate{{ID: 1, GPA: math.Inf(1)}},
			want:  ErrGPAOutOfRange,
		},
		{
			name: "duplicate stamp id",
			cands: []Candidate{{ID: 1, Stamps: []Stamp{
				{ID: 7, Category: CategoryResearch},
				{ID: 7, Category: CategoryTechnical},
			}}},
			want: ErrDuplicateStamp,
		},
		{
			name:  "unknown category",
			cands: []Candidate{{ID: 1, Stamps: []Stamp{{ID: 1, Category: "Athletics"}}}},
			want:  ErrUnknownCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cands)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateAllowsUnknownStatus(t *testing.T) {
	cands := []Candidate{{ID: 1, Status: "Waitlisted"}}
	if err := Validate(cands); err != nil {
		t.Fatalf("unknown status should not fail validation: %v", err)
	}
}

func TestCountByStatusFoldsUnknownIntoPending(t *testing.T) {
	cands := append(Sample(), Candidate{ID: 11, Status: "Waitlisted"})
	counts := CountByStatus(cands)
	want := map[Status]int{
		StatusPending:  3,
		StatusInReview: 4,
		StatusAccepted: 3,
		StatusRejected: 1,
	}
	for s, n := range want {
		if counts[s] != n {
			t.Errorf("count[%s] = %d, want %d", s, counts[s], n)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, ok)
		}
	}
	if got, ok := ParseCategory(" research "); !ok || got != CategoryResearch {
		t.Errorf("ParseCategory trims and folds case, got %q %v", got, ok)
	}
	if _, ok := ParseCategory("Sports"); ok {
		t.Error("ParseCategory accepted an unknown category")
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID(Sample(), 5)
	if !ok || c.Name != "Sophie Chen" {
		t.Fatalf("ByID(5) = %+v, %v", c, ok)
	}
	if _, ok := ByID(Sample(), 99); ok {
		t.Fatal("ByID(99) should miss")
	}
}
