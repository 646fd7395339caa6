package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// Formats accepted by Write.
const (
	JSON = "json"
	EDN  = "edn"
	Text = "text"
)

// Liner is implemented by payloads that have a plain-text rendering.
type Liner interface {
	Lines() []string
}

// Write writes v in the requested format ("" means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	case Text:
		return WriteText(w, v)
	default:
		return errors.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText writes one line per entry of v.Lines().
func WriteText(w io.Writer, v any) error {
	l, ok := v.(Liner)
	if !ok {
		return errors.Errorf("text format not supported for %T", v)
	}
	lines := l.Lines()
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
