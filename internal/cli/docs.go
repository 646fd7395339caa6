package cli

import (
	"fmt"
	"strings"

	"colombo-utc/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

type docsTopicsPayload struct {
	Data struct {
		Topics []string `json:"topics"`
	} `json:"data"`
}

func (p docsTopicsPayload) Lines() []string { return p.Data.Topics }

type docsTopicPayload struct {
	Data struct {
		Topic    string `json:"topic"`
		Markdown string `json:"markdown"`
	} `json:"data"`
}

func (p docsTopicPayload) Lines() []string {
	return strings.Split(strings.TrimRight(p.Data.Markdown, "\n"), "\n")
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var render bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var p docsTopicsPayload
				p.Data.Topics = docs.Topics()
				return writeOut(cmd, app, p)
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, errors.Errorf("unknown docs topic: %q (run `colombo-utc docs` to list topics)", topic))
			}

			switch {
			case render:
				r, err := glamour.NewTermRenderer(
					glamour.WithEnvironmentConfig(),
					glamour.WithWordWrap(width),
				)
				if err != nil {
					return writeErr(cmd, err)
				}
				out, err := r.Render(body)
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			var p docsTopicPayload
			p.Data.Topic = strings.ToLower(strings.TrimSpace(topic))
			p.Data.Markdown = body
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")

	return cmd
}
