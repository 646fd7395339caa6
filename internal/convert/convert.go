// Package convert turns Asia/Colombo wall-clock entries into UTC timestamps.
package convert

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// UTCLayout renders an instant as YYYY-MM-DDTHH:mm:ss.SSSZ.
const UTCLayout = "2006-01-02T15:04:05.000Z"

const entrySeparator = ", "

var reLocalDateTime = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{1,2}):(\d{2}):(\d{2}) (AM|PM)$`)

// LocalDateTime is a parsed entry before it is bound to a zone.
type LocalDateTime struct {
	Year     int
	Month    time.Month
	Day      int
	Hour     int // 1-12
	Minute   int
	Second   int
	Meridiem string // "AM" or "PM"
}

// Hour24 maps the 12-hour clock onto 0-23.
func (l LocalDateTime) Hour24() int {
	h := l.Hour % 12
	if l.Meridiem == "PM" {
		h += 12
	}
	return h
}

// In returns the instant l denotes in loc.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour24(), l.Minute, l.Second, 0, loc)
}

// Outcome is the result of converting one entry. Err is nil on success.
type Outcome struct {
	Raw string
	UTC string
	Err *FormatError
}

// OK reports whether the entry converted.
func (o Outcome) OK() bool { return o.Err == nil }

// Converter converts entries interpreted in a fixed location.
type Converter struct {
	loc *time.Location
}

// New returns a Converter bound to loc.
func New(loc *time.Location) *Converter {
	return &Converter{loc: loc}
}

// Convert parses raw and formats it as a UTC timestamp.
//
// Convert never panics: anything unexpected is reported as an unparseable entry.
func (c *Converter) Convert(raw string) (out Outcome) {
	out.Raw = raw
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Raw: raw, Err: formatErr(raw, ReasonUnparseable)}
		}
	}()

	if c.loc == nil {
		out.Err = formatErr(raw, ReasonZone)
		return out
	}
	l, err := Parse(raw)
	if err != nil {
		fe, ok := AsFormatError(err)
		if !ok {
			fe = formatErr(raw, ReasonUnparseable)
		}
		out.Err = fe
		return out
	}
	out.UTC = l.In(c.loc).UTC().Format(UTCLayout)
	return out
}

// ConvertAll converts each entry independently, keeping input order.
func (c *Converter) ConvertAll(entries []string) []Outcome {
	out := make([]Outcome, 0, len(entries))
	for _, e := range entries {
		out = append(out, c.Convert(e))
	}
	return out
}

// SplitEntry splits raw on the first ", " into trimmed date and time parts.
func SplitEntry(raw string) (date string, clock string, err error) {
	before, after, found := strings.Cut(raw, entrySeparator)
	date = strings.TrimSpace(before)
	clock = strings.TrimSpace(after)
	if !found || date == "" || clock == "" {
		return "", "", formatErr(raw, ReasonMissingPart)
	}
	return date, clock, nil
}

// Parse decodes raw into its local date and time fields.
// The returned error is always a *FormatError.
func Parse(raw string) (LocalDateTime, error) {
	date, clock, err := SplitEntry(raw)
	if err != nil {
		return LocalDateTime{}, err
	}
	m := reLocalDateTime.FindStringSubmatch(date + " " + clock)
	if m == nil {
		return LocalDateTime{}, formatErr(raw, ReasonUnparseable)
	}

	// The grammar guarantees digits, so Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	switch {
	case month < 1 || month > 12:
		return LocalDateTime{}, formatErr(raw, ReasonMonth)
	case day < 1 || day > daysIn(year, time.Month(month)):
		return LocalDateTime{}, formatErr(raw, ReasonDay)
	case hour < 1 || hour > 12:
		return LocalDateTime{}, formatErr(raw, ReasonHour)
	case minute > 59:
		return LocalDateTime{}, formatErr(raw, ReasonMinute)
	case second > 59:
		return LocalDateTime{}, formatErr(raw, ReasonSecond)
	}

	return LocalDateTime{
		Year:     year,
		Month:    time.Month(month),
		Day:      day,
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Meridiem: m[7],
	}, nil
}

// SplitBatch splits newline-separated input into entries, dropping blank lines.
func SplitBatch(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var colomboConverter = sync.OnceValue(func() *Converter {
	loc, err := Colombo()
	if err != nil {
		return New(nil)
	}
	return New(loc)
})

// Convert converts raw using Asia/Colombo rules.
func Convert(raw string) Outcome {
	return colomboConverter().Convert(raw)
}

// ConvertAll converts entries using Asia/Colombo rules.
func ConvertAll(entries []string) []Outcome {
	return colomboConverter().ConvertAll(entries)
}
