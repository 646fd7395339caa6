package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Structs go through encoding/json first so json
// tags decide the keys; object keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	e := &ednWriter{pretty: pretty}
	e.value(x, 0)
	e.buf.WriteByte('\n')
	_, err = w.Write(e.buf.Bytes())
	return err
}

type ednWriter struct {
	buf    bytes.Buffer
	pretty bool
}

func (e *ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("nil")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case string:
		e.buf.WriteString(strconv.Quote(t))
	case []any:
		e.open('[', len(t) == 0)
		for i, it := range t {
			e.sep(i, depth+1)
			e.value(it, depth+1)
		}
		e.close(']', len(t) == 0, depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.open('{', len(keys) == 0)
		for i, k := range keys {
			e.sep(i, depth+1)
			e.buf.WriteString(keyword(k))
			e.buf.WriteByte(' ')
			e.value(t[k], depth+1)
		}
		e.close('}', len(keys) == 0, depth)
	default:
		e.buf.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (e *ednWriter) open(c byte, empty bool) {
	e.buf.WriteByte(c)
	if e.pretty && !empty {
		e.buf.WriteByte('\n')
	}
}

func (e *ednWriter) sep(i, depth int) {
	if i > 0 {
		if e.pretty {
			e.buf.WriteByte('\n')
		} else {
			e.buf.WriteByte(' ')
		}
	}
	if e.pretty {
		e.buf.WriteString(strings.Repeat("  ", depth))
	}
}

func (e *ednWriter) close(c byte, empty bool, depth int) {
	if e.pretty && !empty {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat("  ", depth))
	}
	e.buf.WriteByte(c)
}

func keyword(k string) string {
	k = strings.TrimSpace(k)
	k = strings.ReplaceAll(k, " ", "-")
	k = strings.ReplaceAll(k, "_", "-")
	return ":" + k
}
