package cli

import (
	"colombo-utc/internal/convert"

	"github.com/spf13/cobra"
)

type zonePayload struct {
	Data convert.ZoneInfo `json:"data"`
}

func (p zonePayload) Lines() []string {
	return []string{p.Data.Name + " " + p.Data.Offset + " (" + p.Data.Abbrev + ")"}
}

func newZoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zone",
		Short: "Show the Asia/Colombo offset in effect now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := convert.Colombo()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, zonePayload{Data: convert.Describe(loc, app.now())})
		},
	}
}
