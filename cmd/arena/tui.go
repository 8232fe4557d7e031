package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"arena/internal/ui"
)

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.New(ui.Options{
				Registry:      opts.registry,
				Limits:        opts.limits(),
				DefaultCohort: opts.cfg.Cohort.Default,
				PromptType:    opts.cfg.PromptType(),
				MaxImageBytes: opts.cfg.Prompt.MaxImageBytes,
				ExportDir:     opts.cfg.Output.ExportDir,
			})
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := p.Run()
			return err
		},
	}
}
