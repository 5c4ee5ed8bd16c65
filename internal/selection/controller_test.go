package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/admissions/internal/roster"
)

func TestZeroValueIsClosed(t *testing.T) {
	var s Controller
	require.False(t, s.IsOpen())
	_, ok := s.Current()
	require.False(t, ok)
}

func TestOpenThenClose(t *testing.T) {
	sample := roster.Sample()
	var s Controller
	s.Open(sample[0])
	got, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, 1, got.ID)

	s.Close()
	require.False(t, s.IsOpen())
	got, ok = s.Current()
	require.False(t, ok)
	require.Zero(t, got.ID)
}

func TestOpenReplacesPreviousSelection(t *testing.T) {
	sample := roster.Sample()
	var s Controller
	s.Open(sample[0])
	s.Open(sample[4])
	got, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, "Sophie Chen", got.Name)

	s.Close()
	require.False(t, s.IsOpen(), "one close must clear a replaced selection")
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	var s Controller
	s.Close()
	s.Close()
	require.False(t, s.IsOpen())
}

func TestOpenSameCandidateTwice(t *testing.T) {
	c := roster.Sample()[2]
	var s Controller
	s.Open(c)
	s.Open(c)
	got, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, c.ID, got.ID)
}
