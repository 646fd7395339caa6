package session

import (
	"testing"

	"colombo-utc/internal/convert"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_ValidEntryClearsInput(t *testing.T) {
	t.Parallel()

	s := &State{Input: " 2024-01-15, 3:45:00 PM "}
	require.NoError(t, s.AddInput())
	assert.Equal(t, []string{"2024-01-15, 3:45:00 PM"}, s.Entries)
	assert.Empty(t, s.Input)
}

func TestAdd_MalformedEntryLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s := &State{Input: "2024-01-15", Entries: []string{"2024-01-14, 1:00:00 AM"}}
	err := s.AddInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrFormat))
	assert.Equal(t, "2024-01-15", s.Input)
	assert.Equal(t, []string{"2024-01-14, 1:00:00 AM"}, s.Entries)
}

func TestAdd_AcceptsShapeEvenIfDateInvalid(t *testing.T) {
	t.Parallel()

	// Add only checks for both halves; calendar validation happens on convert.
	s := &State{}
	require.NoError(t, s.Add("2024-13-01, 1:00:00 PM"))
	assert.Len(t, s.Entries, 1)
}

func TestAddBatch(t *testing.T) {
	t.Parallel()

	s := &State{}
	added, rejected := s.AddBatch("2024-01-15, 3:45:00 PM\n\nbogus\n 2024-01-15, 12:00:00 AM \n")
	assert.Equal(t, 2, added)
	require.Len(t, rejected, 1)
	fe, ok := convert.AsFormatError(rejected[0])
	require.True(t, ok)
	assert.Equal(t, "bogus", fe.Raw)
	assert.Equal(t, []string{"2024-01-15, 3:45:00 PM", "2024-01-15, 12:00:00 AM"}, s.Entries)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := &State{Entries: []string{"a", "b", "c"}}
	assert.True(t, s.Remove(1))
	assert.Equal(t, []string{"a", "c"}, s.Entries)
	assert.False(t, s.Remove(5))
	assert.False(t, s.Remove(-1))
	assert.Equal(t, []string{"a", "c"}, s.Entries)
}

func TestConvertAll_KeepsFailuresInOrder(t *testing.T) {
	t.Parallel()

	s := &State{Entries: []string{"2024-01-15, 3:45:00 PM", "2024-13-01, 1:00:00 PM"}}
	outs := s.ConvertAll()
	require.Len(t, outs, 2)
	assert.True(t, s.CanCopy())
	assert.True(t, outs[0].OK())
	assert.False(t, outs[1].OK())
	assert.Equal(t, []string{"2024-01-15T10:15:00.000Z"}, s.Successes())
	require.Len(t, s.Failures(), 1)
	assert.Equal(t, "2024-13-01, 1:00:00 PM", s.Failures()[0].Raw)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := &State{Input: "x", Entries: []string{"2024-01-15, 3:45:00 PM"}}
	s.ConvertAll()
	s.Clear()
	assert.Equal(t, State{}, *s)
	assert.False(t, s.CanCopy())
}

func TestCopyText(t *testing.T) {
	t.Parallel()

	s := &State{Entries: []string{
		"2024-01-15, 3:45:00 PM",
		"2024-13-01, 1:00:00 PM",
		"2024-01-15, 12:00:00 AM",
	}}
	s.ConvertAll()

	text, skipped, err := s.CopyText(CopySkip)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10:15:00.000Z, 2024-01-14T18:30:00.000Z", text)
	assert.Equal(t, 1, skipped)

	_, _, err = s.CopyText(CopyBlock)
	assert.True(t, errors.Is(err, ErrCopyBlocked))
}

func TestCopyText_NothingToCopy(t *testing.T) {
	t.Parallel()

	s := &State{}
	_, _, err := s.CopyText(CopySkip)
	assert.True(t, errors.Is(err, ErrNothingToCopy))

	s = &State{Entries: []string{"2024-02-30, 1:00:00 PM"}}
	s.ConvertAll()
	_, skipped, err := s.CopyText(CopySkip)
	assert.True(t, errors.Is(err, ErrNothingToCopy))
	assert.Equal(t, 1, skipped)
}

func TestParseCopyPolicy(t *testing.T) {
	t.Parallel()

	p, err := ParseCopyPolicy("")
	require.NoError(t, err)
	assert.Equal(t, CopySkip, p)

	p, err = ParseCopyPolicy(" BLOCK ")
	require.NoError(t, err)
	assert.Equal(t, CopyBlock, p)

	_, err = ParseCopyPolicy("report")
	assert.Error(t, err)
}
