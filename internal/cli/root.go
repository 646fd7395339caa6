package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"colombo-utc/internal/clipboard"
	"colombo-utc/internal/config"
	"colombo-utc/internal/format"
	"colombo-utc/internal/logging"
	"colombo-utc/internal/session"
	"colombo-utc/internal/tui"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	Format     string
	PrettyJSON bool
	CopyPolicy string
	LogLevel   string

	cfg    config.Config
	cfgErr error
	policy session.CopyPolicy
	log    zerolog.Logger

	// Overridable in tests.
	clip clipboard.Writer
	now  func() time.Time
}

func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		// Flags still need defaults; the error surfaces before any command runs.
		cfg, _ = config.LoadFrom(map[string]string{})
	}
	return newRootCmd(&App{cfg: cfg, cfgErr: err, clip: clipboard.System{}, now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	if app.clip == nil {
		app.clip = clipboard.System{}
	}
	if app.now == nil {
		app.now = time.Now
	}
	app.log = zerolog.Nop()

	cmd := &cobra.Command{
		Use:          "colombo-utc",
		Short:        "Convert Asia/Colombo date-times to UTC (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive form
  colombo-utc

  # Convert from the shell (shortcut for: colombo-utc convert "<entry>")
  colombo-utc "2024-01-15, 3:45:00 PM"

  # Convert a file with one entry per line and copy the results
  colombo-utc convert --file entries.txt --format text --copy
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive form.
			if len(args) == 0 {
				return runTUI(app)
			}
			return writeErr(cmd, errors.Errorf("unknown command %q for %q (entries start with YYYY-MM-DD; see --help)", args[0], cmd.CommandPath()))
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.cfgErr != nil {
			return writeErr(cmd, app.cfgErr)
		}
		switch app.Format {
		case format.JSON, format.EDN, format.Text:
		default:
			return writeErr(cmd, errors.Errorf("unknown format: %s (expected json|edn|text)", app.Format))
		}
		p, err := session.ParseCopyPolicy(app.CopyPolicy)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.policy = p
		l, err := logging.New(cmd.ErrOrStderr(), app.LogLevel)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = l
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", app.cfg.Format, "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", app.cfg.Pretty, "Pretty-print json/edn output")
	cmd.PersistentFlags().StringVar(&app.CopyPolicy, "copy-policy", app.cfg.CopyPolicy, "What copy does with failed entries (skip|block)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", app.cfg.LogLevel, "Log level for stderr diagnostics")

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newZoneCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	debugLog, closeLog, err := logging.OpenDebug(app.cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(tui.Options{
		CopyPolicy: app.policy,
		Clipboard:  app.clip,
		Logger:     &debugLog,
		Theme:      app.cfg.TUITheme,
		Glyphs:     app.cfg.TUIGlyphs,
	})
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
