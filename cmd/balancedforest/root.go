package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "balancedforest",
		Short:         "Balanced forest: smallest node to add so a tree splits into three equal parts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a))

	return root
}

// load resolves the config (defaults, file, persistent flags) and the logger.
// Subcommand flags are applied by the subcommands before they validate.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	a.cfg = cfg

	return nil
}

// finish validates the fully merged config and builds the logger.
func (a *app) finish(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	log, err := newLogger(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	return nil
}
