package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"arena/internal/config"
	"arena/internal/models"
	"arena/internal/orchestrator"
)

var version = "dev"

// rootOptions carries the persistent flags and the loaded config to subcommands.
type rootOptions struct {
	configPath string
	debug      bool

	cfg      *config.Config
	registry *models.Registry
}

func (o *rootOptions) load() error {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg
	o.registry = models.NewRegistry()
	slog.Debug("config loaded", "path", o.resolvedPath(), "format", cfg.Output.Format, "cohort", cfg.Cohort.Default)
	return nil
}

func (o *rootOptions) resolvedPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.ConfigPath()
}

func (o *rootOptions) limits() orchestrator.Limits {
	return orchestrator.Limits{Min: o.cfg.Cohort.MinSize, Max: o.cfg.Cohort.MaxSize}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Arena - deterministic multi-model peer evaluation",
		Long: `Arena simulates a round of peer review between foundation models.

Pick a cohort of four to five models and a text, image or mixed prompt. Every
model answers, scores every response, and the three best composites are
re-ranked by a judge. The same inputs always produce the same results.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default $"+config.EnvPath+" or the user config dir)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return opts.load()
	}

	cmd.AddCommand(newModelsCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newTUICommand(opts))
	cmd.AddCommand(newConfigCommand(opts))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
