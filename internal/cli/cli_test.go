package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"colombo-utc/internal/clipboard"
	"colombo-utc/internal/config"
)

type runResult struct {
	stdout string
	stderr string
	err    error
	copied []string
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	cfg, err := config.LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	var copied []string
	app := &App{
		cfg: cfg,
		clip: clipboard.Func(func(s string) error {
			copied = append(copied, s)
			return nil
		}),
		now: func() time.Time { return time.Date(2024, 1, 15, 10, 15, 0, 0, time.UTC) },
	}

	cmd := newRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err, copied: copied}
}

func TestConvert_JSON(t *testing.T) {
	t.Parallel()

	r := run(t, "", "convert", "2024-01-15, 3:45:00 PM", "2024-13-01, 1:00:00 PM")
	if r.err != nil {
		t.Fatalf("convert: %v\nstderr: %s", r.err, r.stderr)
	}

	var got struct {
		Data struct {
			Results []struct {
				Input  string `json:"input"`
				OK     bool   `json:"ok"`
				UTC    string `json:"utc"`
				Reason string `json:"reason"`
			} `json:"results"`
		} `json:"data"`
		Meta struct {
			Count  int    `json:"count"`
			Failed int    `json:"failed"`
			Zone   string `json:"zone"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("decode %q: %v", r.stdout, err)
	}
	if len(got.Data.Results) != 2 {
		t.Fatalf("expected 2 results; got %d", len(got.Data.Results))
	}
	if !got.Data.Results[0].OK || got.Data.Results[0].UTC != "2024-01-15T10:15:00.000Z" {
		t.Fatalf("unexpected first result: %+v", got.Data.Results[0])
	}
	if got.Data.Results[1].OK || got.Data.Results[1].Reason != "invalid month" {
		t.Fatalf("unexpected second result: %+v", got.Data.Results[1])
	}
	if got.Meta.Count != 2 || got.Meta.Failed != 1 || got.Meta.Zone != "Asia/Colombo" {
		t.Fatalf("unexpected meta: %+v", got.Meta)
	}
}

func TestConvert_TextFromStdin(t *testing.T) {
	t.Parallel()

	r := run(t, "2024-01-15, 3:45:00 PM\n\n  \n2024-01-15, 12:00:00 AM\nnope\n", "convert", "--format", "text")
	if r.err != nil {
		t.Fatalf("convert: %v\nstderr: %s", r.err, r.stderr)
	}
	lines := strings.Split(strings.TrimRight(r.stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines; got %q", r.stdout)
	}
	if lines[0] != "2024-01-15T10:15:00.000Z" || lines[1] != "2024-01-14T18:30:00.000Z" {
		t.Fatalf("unexpected lines: %q", lines)
	}
	if !strings.HasPrefix(lines[2], `error: invalid date and time format for "nope"`) {
		t.Fatalf("unexpected error line: %q", lines[2])
	}
}

func TestConvert_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "entries.txt")
	if err := os.WriteFile(path, []byte("2024-01-15, 3:45:00 PM\r\n2024-02-29, 6:00:00 AM\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := run(t, "", "convert", "--file", path, "--format", "text")
	if r.err != nil {
		t.Fatalf("convert: %v", r.err)
	}
	if r.stdout != "2024-01-15T10:15:00.000Z\n2024-02-29T00:30:00.000Z\n" {
		t.Fatalf("unexpected output %q", r.stdout)
	}
}

func TestConvert_ArgsAndFileConflict(t *testing.T) {
	t.Parallel()

	r := run(t, "", "convert", "--file", "x.txt", "2024-01-15, 3:45:00 PM")
	if r.err == nil {
		t.Fatalf("expected error")
	}
}

func TestConvert_NoEntries(t *testing.T) {
	t.Parallel()

	r := run(t, "\n\n", "convert")
	if r.err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(r.stderr, "no entries") {
		t.Fatalf("expected no entries message; got %q", r.stderr)
	}
}

func TestConvert_StrictFailsOnInvalidEntry(t *testing.T) {
	t.Parallel()

	r := run(t, "", "convert", "--strict", "--format", "text", "2024-01-15, 3:45:00 PM", "2024-01-15")
	if r.err == nil {
		t.Fatalf("expected strict error")
	}
	if _, ok := r.err.(conversionFailedError); !ok {
		t.Fatalf("expected conversionFailedError; got %T", r.err)
	}
	// Output is still written for every entry.
	if strings.Count(r.stdout, "\n") != 2 {
		t.Fatalf("expected 2 output lines; got %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "1 of 2 entries failed to convert") {
		t.Fatalf("unexpected stderr %q", r.stderr)
	}
}

func TestConvert_CopySkipsFailures(t *testing.T) {
	t.Parallel()

	r := run(t, "", "convert", "--copy", "2024-01-15, 3:45:00 PM", "bad", "2024-01-15, 12:00:00 AM")
	if r.err != nil {
		t.Fatalf("convert: %v", r.err)
	}
	if len(r.copied) != 1 || r.copied[0] != "2024-01-15T10:15:00.000Z, 2024-01-14T18:30:00.000Z" {
		t.Fatalf("unexpected clipboard writes %q", r.copied)
	}
	if !strings.Contains(r.stdout, `"copied":true`) {
		t.Fatalf("expected copied flag in meta; got %q", r.stdout)
	}
}

func TestConvert_CopyBlockPolicy(t *testing.T) {
	t.Parallel()

	r := run(t, "", "convert", "--copy", "--copy-policy", "block", "2024-01-15, 3:45:00 PM", "bad")
	if r.err == nil {
		t.Fatalf("expected copy to be blocked")
	}
	if len(r.copied) != 0 {
		t.Fatalf("expected no clipboard writes; got %q", r.copied)
	}
	if !strings.Contains(r.stdout, `"copied":false`) {
		t.Fatalf("expected copied=false in meta; got %q", r.stdout)
	}
}

func TestConvert_EDN(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--format", "edn", "convert", "2024-01-15, 3:45:00 PM")
	if r.err != nil {
		t.Fatalf("convert: %v", r.err)
	}
	if !strings.Contains(r.stdout, `:utc "2024-01-15T10:15:00.000Z"`) {
		t.Fatalf("unexpected edn %q", r.stdout)
	}
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--format", "xml", "convert", "2024-01-15, 3:45:00 PM")
	if r.err == nil {
		t.Fatalf("expected error")
	}
	if r.stdout != "" {
		t.Fatalf("expected no output; got %q", r.stdout)
	}
}

func TestRoot_RejectsUnknownCopyPolicy(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--copy-policy", "report", "convert", "2024-01-15, 3:45:00 PM")
	if r.err == nil {
		t.Fatalf("expected error")
	}
}

func TestZone(t *testing.T) {
	t.Parallel()

	r := run(t, "", "zone", "--format", "text")
	if r.err != nil {
		t.Fatalf("zone: %v", r.err)
	}
	if r.stdout != "Asia/Colombo +05:30 (+0530)\n" {
		t.Fatalf("unexpected output %q", r.stdout)
	}
}

func TestDocs(t *testing.T) {
	t.Parallel()

	r := run(t, "", "docs", "--format", "text")
	if r.err != nil {
		t.Fatalf("docs: %v", r.err)
	}
	if r.stdout != "format\nkeys\nusage\n" {
		t.Fatalf("unexpected topics %q", r.stdout)
	}

	r = run(t, "", "docs", "usage", "--raw")
	if r.err != nil {
		t.Fatalf("docs usage: %v", r.err)
	}
	if !strings.HasPrefix(r.stdout, "# colombo-utc") {
		t.Fatalf("unexpected raw docs %q", r.stdout)
	}

	r = run(t, "", "docs", "missing")
	if r.err == nil || !strings.Contains(r.stderr, "unknown docs topic") {
		t.Fatalf("expected unknown topic error; got err=%v stderr=%q", r.err, r.stderr)
	}
}

func TestConvert_EntryAfterDoubleDash(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--format", "text", "convert", "--", "2024-01-15, 3:45:00 PM")
	if r.err != nil {
		t.Fatalf("convert: %v\nstderr: %s", r.err, r.stderr)
	}
	if r.stdout != "2024-01-15T10:15:00.000Z\n" {
		t.Fatalf("unexpected output %q", r.stdout)
	}
}

func TestRoot_RejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"wat"},
		{"--", "convert", "2024-01-15, 3:45:00 PM"},
	} {
		r := run(t, "", args...)
		if r.err == nil {
			t.Fatalf("%q: expected error", args)
		}
		if !strings.Contains(r.stderr, "unknown command") {
			t.Fatalf("%q: unexpected stderr %q", args, r.stderr)
		}
		if strings.Contains(r.stdout, "Usage:") {
			t.Fatalf("%q: expected no help output; got %q", args, r.stdout)
		}
	}
}
