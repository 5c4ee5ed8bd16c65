package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/admissions/internal/roster"
)

func ids(cands []roster.Candidate) []int {
	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.ID
	}
	return out
}

func TestFilterScienceMatchesProgramSubstring(t *testing.T) {
	st := NewState(FieldName, Ascending)
	st.Search = "science"
	got := st.Apply(roster.Sample())

	// Computer Science (Priya, Sophie) and Data Science (Leila, Amara).
	want := []int{7, 3, 1, 5}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("science filter mismatch (-want +got):\n%s", diff)
	}
	for _, c := range got {
		require.Contains(t, []string{"Computer Science", "Data Science"}, c.Program)
	}
}

func TestFilterSoundAndComplete(t *testing.T) {
	searches := []string{"", "a", "SCI", "psych", "chen", "eng.", "zzz", " ", "Admin"}
	sample := roster.Sample()
	for _, s := range searches {
		got := Filter(sample, s)
		in := map[int]bool{}
		for _, c := range got {
			in[c.ID] = true
		}
		q := strings.ToLower(s)
		for _, c := range sample {
			hit := strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Program), q)
			require.Equalf(t, hit, in[c.ID], "search %q candidate %d", s, c.ID)
		}
	}
}

func TestFilterEmptySearchKeepsEveryone(t *testing.T) {
	require.Len(t, Filter(roster.Sample(), ""), 10)
}

func TestFilterNoMatchesIsEmptyNotNil(t *testing.T) {
	got := Filter(roster.Sample(), "no such candidate")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSortGPADescending(t *testing.T) {
	got := NewState(FieldGPA, Descending).Apply(roster.Sample())
	require.Equal(t, 4.0, got[0].GPA)
	require.Equal(t, "Sophie Chen", got[0].Name)
	require.Equal(t, 2.9, got[len(got)-1].GPA)
	require.Equal(t, "Tom Okafor", got[len(got)-1].Name)
}

func TestSortIsTotalOrderForEveryFieldAndDirection(t *testing.T) {
	sample := roster.Sample()
	for _, f := range Fields() {
		for _, d := range []Direction{Ascending, Descending} {
			t.Run(f.Name()+"/"+d.String(), func(t *testing.T) {
				st := NewState(f, d)
				got := st.Apply(sample)
				require.Len(t, got, len(sample))
				for i := 1; i < len(got); i++ {
					c := compare(collatorForTest(), f, got[i-1], got[i])
					if d == Descending {
						c = -c
					}
					require.LessOrEqualf(t, c, 0, "rows %d and %d out of order", got[i-1].ID, got[i].ID)
				}
				again := st.Apply(sample)
				if diff := cmp.Diff(ids(got), ids(again)); diff != "" {
					t.Fatalf("re-applying is not idempotent (-first +second):\n%s", diff)
				}
				resorted := append([]roster.Candidate(nil), got...)
				Sort(resorted, f, d)
				require.Equal(t, ids(got), ids(resorted))
			})
		}
	}
}

func TestSortNameAscendingUsesLocaleOrder(t *testing.T) {
	got := NewState(FieldName, Ascending).Apply(roster.Sample())
	want := []string{
		"Amara Diallo", "Diego Reyes", "James Harrington", "Leila Ahmadi", "Marcus Webb",
		"Nina Kowalski", "Priya Nair", "Sophie Chen", "Tom Okafor", "Yuki Tanaka",
	}
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	require.Equal(t, want, names)
}

func TestSortTextIgnoresCaseAtPrimaryLevel(t *testing.T) {
	cands := []roster.Candidate{{ID: 1, Name: "bravo"}, {ID: 2, Name: "Alpha"}, {ID: 3, Name: "charlie"}}
	Sort(cands, FieldName, Ascending)
	require.Equal(t, []int{2, 1, 3}, ids(cands))
}

func TestSortAppliedDateDescendingIsNewestFirst(t *testing.T) {
	got := NewState(FieldAppliedDate, Descending).Apply(roster.Sample())
	require.Equal(t, 10, got[0].ID)
	require.Equal(t, 1, got[len(got)-1].ID)
}

func TestSortTiesKeepInputOrder(t *testing.T) {
	cands := []roster.Candidate{
		{ID: 1, Program: "Psychology"},
		{ID: 2, Program: "Business Admin"},
		{ID: 3, Program: "Psychology"},
		{ID: 4, Program: "Business Admin"},
	}
	asc := append([]roster.Candidate(nil), cands...)
	Sort(asc, FieldProgram, Ascending)
	require.Equal(t, []int{2, 4, 1, 3}, ids(asc))

	desc := append([]roster.Candidate(nil), cands...)
	Sort(desc, FieldProgram, Descending)
	require.Equal(t, []int{1, 3, 2, 4}, ids(desc))
}

func TestSortUnknownFieldKeepsOrderWithoutPanicking(t *testing.T) {
	sample := roster.Sample()
	for _, f := range []Field{FieldNone, Field(42)} {
		got := NewState(f, Descending).Apply(sample)
		require.Equal(t, ids(sample), ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	sample := roster.Sample()
	before := ids(sample)
	_ = NewState(FieldGPA, Descending).Apply(sample)
	require.Equal(t, before, ids(sample))
}

func TestToggleSameFieldTwiceRestoresDirection(t *testing.T) {
	for _, start := range []Direction{Ascending, Descending} {
		st := NewState(FieldGPA, start)
		st.Toggle(FieldGPA)
		require.Equal(t, start.Flip(), st.Dir)
		st.Toggle(FieldGPA)
		require.Equal(t, FieldGPA, st.Field)
		require.Equal(t, start, st.Dir)
	}
}

func TestToggleOtherFieldResetsToAscending(t *testing.T) {
	for _, start := range []Direction{Ascending, Descending} {
		st := NewState(FieldAppliedDate, start)
		st.Toggle(FieldName)
		require.Equal(t, FieldName, st.Field)
		require.Equal(t, Ascending, st.Dir)
	}
}

func TestToggleKeepsSearch(t *testing.T) {
	st := NewState(FieldName, Ascending)
	st.Search = "data"
	st.Toggle(FieldGPA)
	require.Equal(t, "data", st.Search)
}
