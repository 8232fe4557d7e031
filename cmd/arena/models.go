package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"arena/internal/models"
)

func newModelsCommand(opts *rootOptions) *cobra.Command {
	var asJSON, vision bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the model catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog := opts.registry.All()
			if vision {
				catalog = slices.DeleteFunc(catalog, func(m models.ModelInfo) bool { return !m.SupportsVision() })
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}
			return printCatalog(out, catalog, opts.cfg.Cohort.Default, styled(out))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	cmd.Flags().BoolVar(&vision, "vision", false, "Only list models that accept images")
	return cmd
}

func printCatalog(w io.Writer, catalog []models.ModelInfo, defaults []string, color bool) error {
	idStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if color {
		idStyle = idStyle.Bold(true).Foreground(lipgloss.Color("#00FFFF"))
		dimStyle = dimStyle.Foreground(lipgloss.Color("#777777"))
	}

	isDefault := make(map[string]bool, len(defaults))
	for _, id := range defaults {
		isDefault[id] = true
	}

	for _, m := range catalog {
		mark := " "
		if isDefault[m.ID] {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s (%s)\n", mark, idStyle.Render(fmt.Sprintf("%-18s", m.ID)), m.Name, m.Provider); err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  %s\n", strings.Repeat(" ", 18), dimStyle.Render(
			fmt.Sprintf("modalities: %s; strengths: %s", strings.Join(m.Modalities, ", "), strings.Join(m.Strengths, ", "))))
	}
	_, err := fmt.Fprintln(w, dimStyle.Render("* in the default cohort"))
	return err
}
