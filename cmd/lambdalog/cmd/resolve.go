package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Show the level rules and presentation of loggers",
		Long: `Resolve prints, for each logger name, the level rules in effect, the
ancestor they come from ("-" for the global default) and the name that
is printed with each line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := opts.newFactory(cmd, nil)
			defer factory.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LOGGER\tRULES\tFROM\tDISPLAY")
			for _, name := range args {
				cfg := factory.Configuration(name)
				origin := cfg.Origin()
				if origin == "" {
					origin = "-"
				}
				display := cfg.DisplayName()
				if display == "" {
					display = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, cfg.Rules(), origin, display)
			}
			return w.Flush()
		},
	}
}
