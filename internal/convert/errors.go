package convert

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid date and time format")

// Reasons reported by FormatError.
const (
	ReasonMissingPart = "missing date or time"
	ReasonUnparseable = "unparseable"
	ReasonMonth       = "invalid month"
	ReasonDay         = "invalid day"
	ReasonHour        = "invalid hour"
	ReasonMinute      = "invalid minute"
	ReasonSecond      = "invalid second"
	ReasonZone        = "timezone unavailable"
)

// ExpectedFormat is the user-facing description of the accepted input.
const ExpectedFormat = "YYYY-MM-DD, h:mm:ss AM/PM"

// FormatError reports an entry that is not a valid Colombo date and time.
type FormatError struct {
	Raw    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s for %q: %s (expected %s)", ErrFormat.Error(), e.Raw, e.Reason, ExpectedFormat)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

func formatErr(raw, reason string) *FormatError {
	return &FormatError{Raw: raw, Reason: reason}
}

// AsFormatError extracts a *FormatError from err's chain.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
