package cli

import (
	"os"
	"strings"

	"colombo-utc/internal/convert"
	"colombo-utc/internal/session"

	"github.com/go-faster/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type convertResult struct {
	Input  string `json:"input"`
	OK     bool   `json:"ok"`
	UTC    string `json:"utc,omitempty"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

type convertMeta struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Zone   string `json:"zone"`
	Copied *bool  `json:"copied,omitempty"`
}

type convertPayload struct {
	Data struct {
		Results []convertResult `json:"results"`
	} `json:"data"`
	Meta convertMeta `json:"meta"`
}

// Lines renders one line per entry, in input order.
func (p convertPayload) Lines() []string {
	out := make([]string, 0, len(p.Data.Results))
	for _, r := range p.Data.Results {
		if r.OK {
			out = append(out, r.UTC)
			continue
		}
		out = append(out, "error: "+r.Error)
	}
	return out
}

func newConvertPayload(outs []convert.Outcome) convertPayload {
	var p convertPayload
	p.Data.Results = make([]convertResult, 0, len(outs))
	for _, o := range outs {
		r := convertResult{Input: o.Raw, OK: o.OK(), UTC: o.UTC}
		if !o.OK() {
			r.Reason = o.Err.Reason
			r.Error = o.Err.Error()
			p.Meta.Failed++
		}
		p.Data.Results = append(p.Data.Results, r)
	}
	p.Meta.Count = len(outs)
	p.Meta.Zone = convert.ZoneName
	return p
}

func newConvertCmd(app *App) *cobra.Command {
	var file string
	var copyOut bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "convert [entry...]",
		Short: "Convert entries (\"YYYY-MM-DD, h:mm:ss AM/PM\") to UTC",
		Long: strings.TrimSpace(`
Each argument is one entry. Without arguments, entries are read one per line
from --file (use - for stdin) or from piped stdin; blank lines are skipped.
Every entry yields one result, in input order; invalid entries do not stop
the others.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := collectEntries(cmd, args, file)
			if err != nil {
				return writeErr(cmd, err)
			}

			outs := convert.ConvertAll(entries)
			p := newConvertPayload(outs)
			for _, o := range outs {
				if !o.OK() {
					app.log.Info().Str("raw", o.Raw).Str("reason", o.Err.Reason).Msg("entry rejected")
				}
			}

			var copyErr error
			if copyOut {
				copied, err := copyOutcomes(app, outs)
				p.Meta.Copied = &copied
				copyErr = err
			}

			if err := writeOut(cmd, app, p); err != nil {
				return err
			}
			if copyErr != nil {
				return writeErr(cmd, copyErr)
			}
			if strict && p.Meta.Failed > 0 {
				return writeErr(cmd, errConversionFailed(p.Meta.Failed, p.Meta.Count))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read newline-separated entries from a file (- for stdin)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the UTC times to the clipboard (see --copy-policy)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any entry fails")

	return cmd
}

func collectEntries(cmd *cobra.Command, args []string, file string) ([]string, error) {
	if len(args) > 0 {
		if file != "" {
			return nil, errors.New("pass entries as arguments or with --file, not both")
		}
		return args, nil
	}

	var text string
	var err error
	switch {
	case file != "" && file != "-":
		var b []byte
		b, err = os.ReadFile(file)
		text = string(b)
	case file == "-" || !isTerminal(cmd):
		text, err = readAll(cmd.InOrStdin())
	default:
		return nil, noEntriesError{}
	}
	if err != nil {
		return nil, errors.Wrap(err, "read entries")
	}

	entries := convert.SplitBatch(text)
	if len(entries) == 0 {
		return nil, noEntriesError{}
	}
	return entries, nil
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func copyOutcomes(app *App, outs []convert.Outcome) (bool, error) {
	st := session.State{Outcomes: outs}
	text, skipped, err := st.CopyText(app.policy)
	if err != nil {
		return false, err
	}
	if err := app.clip.WriteText(text); err != nil {
		return false, err
	}
	app.log.Debug().Int("skipped", skipped).Msg("copied to clipboard")
	return true, nil
}
