package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/lambdalog/core"
)

func newEnabledCmd(opts *rootOptions) *cobra.Command {
	var markers []string
	c := &cobra.Command{
		Use:   "enabled NAME LEVEL",
		Short: "Check whether a logger writes a level",
		Long: `Enabled prints true or false. With --marker the call carries the named
marker; several --marker flags build a marker referencing the others.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(args[1])
			if err != nil {
				return err
			}

			factory := opts.newFactory(cmd, nil)
			defer factory.Close()

			var marker *core.Marker
			for i, name := range markers {
				m, err := factory.Markers().Lookup(name)
				if err != nil {
					return err
				}
				if i == 0 {
					marker = m
				} else {
					marker.Add(m)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), factory.Configuration(args[0]).IsEnabled(lvl, marker))
			return nil
		},
	}
	c.Flags().StringSliceVarP(&markers, "marker", "m", nil, "marker carried by the call")
	return c
}
