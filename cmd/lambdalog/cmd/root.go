package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/lambdalog/config"
	"github.com/philipp01105/lambdalog/handler"
	"github.com/philipp01105/lambdalog/logger"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the lambdalog command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "lambdalog",
		Short: "Inspect lambdalog logger configuration",
		Long: `lambdalog resolves logger configuration the way a function does at
run time: LOG_* environment variables first, then the properties file,
then compiled-in defaults.

Examples:
  lambdalog resolve com.example.Handler
  lambdalog enabled com.example.Handler debug --marker audit
  LOG_DEFAULT_LEVEL=debug lambdalog emit app info "hello"`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", config.DefaultFile, "properties, YAML or TOML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "report configuration diagnostics down to debug level")

	root.AddCommand(
		newResolveCmd(opts),
		newEnabledCmd(opts),
		newEmitCmd(opts),
		newPropertiesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// newFactory creates a factory reading the OS environment and the
// configured file. Diagnostics go to the command's stderr.
func (o *rootOptions) newFactory(cmd *cobra.Command, h handler.Handler) *logger.Factory {
	lvl := zapcore.WarnLevel
	if o.verbose {
		lvl = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	diag := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), lvl))

	opts := []logger.Option{
		logger.WithConfigurationFile(o.cfgFile),
		logger.WithDiagnostics(diag),
	}
	if h != nil {
		opts = append(opts, logger.WithHandler(h))
	}
	return logger.NewFactory(opts...)
}
