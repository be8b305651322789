package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipp01105/lambdalog/config"
)

func newPropertiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List global properties with their effective value and source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := opts.newFactory(cmd, nil)
			defer factory.Close()
			values := factory.Values()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROPERTY\tVARIABLE\tVALUE\tSOURCE")
			for _, p := range config.AllProperties() {
				value, source := "-", config.SourceDefault.String()
				if v, ok := values.Global(p); ok {
					value = v
				}
				for s := range values.Sources(p) {
					source = s.String()
					break
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.PropertyName, p.VariableName, value, source)
			}
			return w.Flush()
		},
	}
}
