package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"arena/internal/commands"
	"arena/internal/consensus"
	"arena/internal/export"
	"arena/internal/orchestrator"
)

const matrixCellWidth = 18

// renderResults renders the active results tab at the given width.
func (m Model) renderResults(width int) string {
	if m.result == nil {
		return ""
	}
	width = max(width-4, 20)

	switch m.view {
	case commands.ViewMatrix:
		return RenderMatrix(m.result, width)
	case commands.ViewTop:
		return RenderTopThree(m.result)
	case commands.ViewJudge:
		return RenderJudge(m.result, width)
	default:
		return RenderResponses(m.result, width, m.choice)
	}
}

func wrap(s string, width, pad int) string {
	return indent.String(wordwrap.String(s, width-pad), uint(pad))
}

// RenderResponses lists every response in composite order.
func RenderResponses(res *orchestrator.Result, width int, choice string) string {
	var sb strings.Builder
	for i, r := range res.Responses {
		d := r.Detail
		marker := "  "
		if r.ModelID() == choice {
			marker = StatusOK.Render("* ")
		}
		sb.WriteString(fmt.Sprintf("%s%d. %s %s  %s\n", marker, i+1,
			ModelStyle(d.Model.Provider).Render(d.Model.Name),
			DimStyle.Render(d.StyleTag),
			ScoreStyle.Render(export.Score(r.CompositeScore))))
		sb.WriteString(wrap(d.Narrative, width, 4))
		sb.WriteString("\n")
		for _, h := range d.Highlights {
			sb.WriteString(wrap("- "+h, width, 4))
			sb.WriteString("\n")
		}
		sb.WriteString(DimStyle.Render(fmt.Sprintf("    Peer average: %s  Base: %d", export.Score(r.AvgPeerScore), d.BaseScore)))
		sb.WriteString("\n")
		sb.WriteString(wrap(d.Guidance, width, 4))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w-1, "…"), w)
}

// RenderMatrix lays the peer matrix out as a fixed-width grid: rows are
// assessors, columns are the assessed models.
func RenderMatrix(res *orchestrator.Result, width int) string {
	var sb strings.Builder
	sb.WriteString(DimStyle.Render("Each model rates every other model on the leading evaluation facet."))
	sb.WriteString("\n\n")
	if len(res.Matrix) == 0 {
		return sb.String()
	}

	cw := matrixCellWidth
	if n := len(res.Matrix) + 1; width/n < cw {
		cw = max(width/n, 8)
	}

	sb.WriteString(cell("Model →", cw))
	for _, e := range res.Matrix[0].Entries {
		sb.WriteString(SectionStyle.Render(cell(e.To.Name, cw)))
	}
	sb.WriteString("\n")

	for _, row := range res.Matrix {
		sb.WriteString(ModelStyle(row.From.Provider).Render(cell(row.From.Name, cw)))
		for _, e := range row.Entries {
			sb.WriteString(ScoreStyle.Render(cell(fmt.Sprint(e.Score), cw)))
		}
		sb.WriteString("\n")
		sb.WriteString(cell("", cw))
		for _, e := range row.Entries {
			sb.WriteString(DimStyle.Render(cell(e.Focus, cw)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderTopThree lists the composite leaders.
func RenderTopThree(res *orchestrator.Result) string {
	var sb strings.Builder
	sb.WriteString(DimStyle.Render("Derived from composite blend of base performance and peer review."))
	sb.WriteString("\n\n")
	for i, r := range res.TopThree {
		sb.WriteString(fmt.Sprintf("  #%d  %s\n", i+1, ModelStyle(r.Detail.Model.Provider).Render(r.Detail.Model.Name)))
		sb.WriteString(DimStyle.Render(fmt.Sprintf("       Composite %s · Peer %s", export.Score(r.CompositeScore), export.Score(r.AvgPeerScore))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderJudge lists the judge's re-ranking of the top candidates.
func RenderJudge(res *orchestrator.Result, width int) string {
	var sb strings.Builder
	sb.WriteString(DimStyle.Render("Independent pass focused on cross-model alignment signals."))
	sb.WriteString("\n\n")
	for _, e := range res.GeminiRanking {
		d := e.Response.Detail
		sb.WriteString(fmt.Sprintf("  #%d  %s  %s\n", e.Rank, ModelStyle(d.Model.Provider).Render(d.Model.Name), ScoreStyle.Render(export.Score(e.Score))))
		sb.WriteString(DimStyle.Render(wrap(e.Rationale, width, 7)))
		sb.WriteString("\n")
	}
	if top, ok := consensus.Winner(res.GeminiRanking); ok {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s picks %s.\n", consensus.JudgeName, top.Response.Detail.Model.Name))
	}
	return sb.String()
}
