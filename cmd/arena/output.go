package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"arena/internal/consensus"
	"arena/internal/export"
)

// styled reports whether w is an interactive terminal
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printMarkdown renders md through glamour on a terminal and prints it raw otherwise.
func printMarkdown(w io.Writer, md string, width int) error {
	if !styled(w) {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func printTable(w io.Writer, r *export.Report, width int) error {
	res := r.Result
	color := styled(w)

	heading := lipgloss.NewStyle()
	dim := lipgloss.NewStyle()
	if color {
		heading = heading.Bold(true).Foreground(lipgloss.Color("#FFD700"))
		dim = dim.Foreground(lipgloss.Color("#777777"))
	}

	var sb strings.Builder
	sb.WriteString(heading.Render(export.Title(res)))
	sb.WriteString("\n")
	sb.WriteString(dim.Render(fmt.Sprintf("%s prompt, fingerprint %s, run %s", res.Prompt.Type.Label(), res.Prompt.Fingerprint, r.RunID)))
	sb.WriteString("\n\n")

	sb.WriteString(heading.Render("RESPONSES"))
	sb.WriteString("\n")
	responses := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Model", "Provider", "Style", "Base", "Peer avg", "Composite")
	for i, resp := range res.Responses {
		d := resp.Detail
		responses.Row(fmt.Sprint(i+1), d.Model.Name, d.Model.Provider, d.StyleTag,
			fmt.Sprint(d.BaseScore), export.Score(resp.AvgPeerScore), export.Score(resp.CompositeScore))
	}
	sb.WriteString(responses.Render())
	sb.WriteString("\n\n")

	sb.WriteString(heading.Render("PEER MATRIX"))
	sb.WriteString("\n")
	headers := []string{"From \\ To"}
	for _, row := range res.Matrix {
		headers = append(headers, row.From.ID)
	}
	matrix := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
	for _, row := range res.Matrix {
		cells := []string{row.From.ID}
		for _, e := range row.Entries {
			cells = append(cells, fmt.Sprintf("%d %s", e.Score, e.Focus))
		}
		matrix.Row(cells...)
	}
	sb.WriteString(matrix.Render())
	sb.WriteString("\n\n")

	sb.WriteString(heading.Render("TOP THREE"))
	sb.WriteString("\n")
	for i, resp := range res.TopThree {
		sb.WriteString(fmt.Sprintf("  #%d %s  composite %s, peer %s\n", i+1, resp.Detail.Model.Name,
			export.Score(resp.CompositeScore), export.Score(resp.AvgPeerScore)))
	}
	sb.WriteString("\n")

	sb.WriteString(heading.Render(strings.ToUpper(consensus.JudgeName) + " RANKING"))
	sb.WriteString("\n")
	for _, e := range res.GeminiRanking {
		sb.WriteString(fmt.Sprintf("  #%d %s  %s\n", e.Rank, e.Response.Detail.Model.Name, export.Score(e.Score)))
		sb.WriteString(dim.Render(wordwrap.String("     "+e.Rationale, width)))
		sb.WriteString("\n")
	}

	if r.Preference != nil {
		sb.WriteString("\n")
		sb.WriteString(r.Preference.Message)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
