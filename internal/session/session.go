// Package session holds the state of one conversion form.
//
// The state is owned by whoever renders the form; nothing here is global.
package session

import (
	"strings"

	"colombo-utc/internal/convert"

	"github.com/go-faster/errors"
)

var (
	// ErrNothingToCopy is returned when there are no converted timestamps.
	ErrNothingToCopy = errors.New("no converted UTC times to copy")
	// ErrCopyBlocked is returned by CopyBlock when any entry failed to convert.
	ErrCopyBlocked = errors.New("some entries failed to convert")
)

// CopySeparator joins exported timestamps.
const CopySeparator = ", "

// CopyPolicy decides what happens to failed entries on copy.
type CopyPolicy string

const (
	// CopySkip exports successful timestamps and drops failures.
	CopySkip CopyPolicy = "skip"
	// CopyBlock refuses to export while any entry failed.
	CopyBlock CopyPolicy = "block"
)

// ParseCopyPolicy validates a policy name. Empty means CopySkip.
func ParseCopyPolicy(s string) (CopyPolicy, error) {
	switch CopyPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CopySkip:
		return CopySkip, nil
	case CopyBlock:
		return CopyBlock, nil
	default:
		return "", errors.Errorf("unknown copy policy: %q (expected skip|block)", s)
	}
}

// State is the form: the current input, the pending entries and the last results.
type State struct {
	Input    string
	Entries  []string
	Outcomes []convert.Outcome
}

// Add appends raw to the pending entries if it has both a date and a time part.
// On failure the state is left untouched.
func (s *State) Add(raw string) error {
	if _, _, err := convert.SplitEntry(raw); err != nil {
		return err
	}
	s.Entries = append(s.Entries, strings.TrimSpace(raw))
	s.Input = ""
	return nil
}

// AddInput adds the current input.
func (s *State) AddInput() error {
	return s.Add(s.Input)
}

// AddBatch adds every non-blank line of text. Lines that fail are reported and
// skipped; the rest are still added.
func (s *State) AddBatch(text string) (added int, rejected []error) {
	for _, ln := range convert.SplitBatch(text) {
		if err := s.Add(ln); err != nil {
			rejected = append(rejected, err)
			continue
		}
		added++
	}
	return added, rejected
}

// Remove drops the pending entry at i. Out of range indexes are ignored.
func (s *State) Remove(i int) bool {
	if i < 0 || i >= len(s.Entries) {
		return false
	}
	s.Entries = append(s.Entries[:i:i], s.Entries[i+1:]...)
	return true
}

// ConvertAll replaces the results with a conversion of every pending entry.
func (s *State) ConvertAll() []convert.Outcome {
	s.Outcomes = convert.ConvertAll(s.Entries)
	return s.Outcomes
}

// Clear resets input, entries and results.
func (s *State) Clear() {
	*s = State{}
}

// Successes returns the UTC timestamps of converted entries, in entry order.
func (s *State) Successes() []string {
	out := make([]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.OK() {
			out = append(out, o.UTC)
		}
	}
	return out
}

// Failures returns the outcomes that did not convert.
func (s *State) Failures() []convert.Outcome {
	var out []convert.Outcome
	for _, o := range s.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// CanCopy reports whether there is anything to export.
func (s *State) CanCopy() bool {
	return len(s.Successes()) > 0
}

// CopyText builds the clipboard payload under policy. skipped counts failed
// entries left out of the payload.
func (s *State) CopyText(policy CopyPolicy) (text string, skipped int, err error) {
	ok := s.Successes()
	failed := len(s.Outcomes) - len(ok)
	if policy == CopyBlock && failed > 0 {
		return "", 0, errors.Wrapf(ErrCopyBlocked, "%d of %d", failed, len(s.Outcomes))
	}
	if len(ok) == 0 {
		return "", failed, ErrNothingToCopy
	}
	return strings.Join(ok, CopySeparator), failed, nil
}
