package cli

import (
	"fmt"

	"github.com/openfit/fitctl/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend service availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			report := func(name string, up bool) {
				if up {
					fmt.Fprintln(out, formatter.OK(name+" reachable"))
				} else {
					fmt.Fprintln(out, formatter.Warn(name+" unreachable"))
				}
			}
			report("activity service", app.API.Available(cmd.Context()))
			report("coach service", app.Coach.Available(cmd.Context()))
			return nil
		},
	}
}
