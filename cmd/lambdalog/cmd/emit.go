package cmd

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/philipp01105/lambdalog/config"
	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/formatter"
	"github.com/philipp01105/lambdalog/handler/consolehandler"
)

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var (
		requestID string
		marker    string
		asJSON    bool
	)
	c := &cobra.Command{
		Use:   "emit NAME LEVEL MESSAGE...",
		Short: "Write one log line through a logger",
		Long: `Emit logs MESSAGE through the named logger, exactly as a function
would, including the request id. Nothing is printed when the level is
disabled. A random request id is used unless --request-id is given.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(args[1])
			if err != nil {
				return err
			}

			var f formatter.Formatter = formatter.NewTextFormatter(formatter.Config{})
			if asJSON {
				f = formatter.NewJSONFormatter(formatter.Config{})
			}
			h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
				Writer:    cmd.OutOrStdout(),
				Formatter: f,
			})
			factory := opts.newFactory(cmd, h)
			defer factory.Close()

			if requestID == "" {
				requestID = uuid.NewString()
			}
			key := factory.Values().String(config.RequestID)
			ctx := core.WithMDC(context.Background(), key, requestID)

			log := factory.Logger(args[0])
			if marker != "" {
				m, err := factory.Markers().Lookup(marker)
				if err != nil {
					return err
				}
				log = log.WithMarker(m)
			}
			log.Log(ctx, lvl, strings.Join(args[2:], " "))
			return nil
		},
	}
	c.Flags().StringVar(&requestID, "request-id", "", "request id placed in the context")
	c.Flags().StringVarP(&marker, "marker", "m", "", "marker carried by the call")
	c.Flags().BoolVar(&asJSON, "json", false, "write JSON instead of text")
	return c
}
