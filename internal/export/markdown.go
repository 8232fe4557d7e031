// internal/export/markdown.go
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"arena/internal/consensus"
	"arena/internal/orchestrator"
)

// runNamespace scopes run ids so equal inputs map to equal ids
var runNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("arena.simulation.run"))

// Report is a finished run ready to be rendered or written.
type Report struct {
	RunID      string
	CreatedAt  time.Time
	Result     *orchestrator.Result
	Preference *consensus.Alignment
}

// NewReport wraps res with its deterministic run id.
func NewReport(res *orchestrator.Result, createdAt time.Time) *Report {
	return &Report{
		RunID:     RunID(res),
		CreatedAt: createdAt,
		Result:    res,
	}
}

// RunID is a UUID v5 over the prompt fingerprint and the cohort ids.
func RunID(res *orchestrator.Result) string {
	return uuid.NewSHA1(runNamespace, []byte(res.Prompt.Fingerprint+":"+strings.Join(cohortIDs(res), ","))).String()
}

func cohortIDs(res *orchestrator.Result) []string {
	ids := make([]string, len(res.Matrix))
	for i, row := range res.Matrix {
		ids[i] = row.From.ID
	}
	return ids
}

// Title is a one-line summary of the prompt
func Title(res *orchestrator.Result) string {
	p := res.Prompt
	switch {
	case p.Text != "":
		return truncate(firstLine(p.Text), 60)
	case p.ImageName != "":
		return p.ImageName
	default:
		return p.Type.Label() + " evaluation"
	}
}

// Markdown renders the report as a markdown document
func Markdown(r *Report) string {
	res := r.Result
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(Title(res))
	sb.WriteString("\n\n")

	// Metadata section
	sb.WriteString("---\n\n")
	sb.WriteString(fmt.Sprintf("**Run ID:** `%s`\n\n", r.RunID))
	sb.WriteString(fmt.Sprintf("**Fingerprint:** `%s`\n\n", res.Prompt.Fingerprint))
	if !r.CreatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("**Created:** %s\n\n", r.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	sb.WriteString(fmt.Sprintf("**Prompt type:** %s\n\n", res.Prompt.Type.Label()))
	if res.Prompt.Text != "" {
		sb.WriteString("**Prompt:**\n\n")
		for _, line := range strings.Split(res.Prompt.Text, "\n") {
			sb.WriteString("> ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if res.Prompt.ImageName != "" {
		sb.WriteString(fmt.Sprintf("**Image:** `%s`\n\n", res.Prompt.ImageName))
	}
	sb.WriteString(fmt.Sprintf("**Cohort:** %s\n\n", strings.Join(cohortNames(res), ", ")))
	sb.WriteString("---\n\n")

	writeResponses(&sb, res)
	writeMatrix(&sb, res)
	writeTopThree(&sb, res)
	writeJudge(&sb, res)

	if r.Preference != nil {
		sb.WriteString("## Your Pick\n\n")
		sb.WriteString(fmt.Sprintf("**%s**: %s\n\n", modelName(res, r.Preference.ChoiceID), r.Preference.Message))
	}

	sb.WriteString("---\n\n")
	sb.WriteString("*Exported from Arena")
	if !r.CreatedAt.IsZero() {
		sb.WriteString(" on " + r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	sb.WriteString("*\n")

	return sb.String()
}

func writeResponses(sb *strings.Builder, res *orchestrator.Result) {
	sb.WriteString("## Responses\n\n")
	for i, resp := range res.Responses {
		d := resp.Detail
		sb.WriteString(fmt.Sprintf("### %d. %s (%s)\n\n", i+1, d.Model.Name, d.Model.Provider))
		sb.WriteString(fmt.Sprintf("Composite **%s** | Peer avg %s | Base %d | *%s*\n\n",
			Score(resp.CompositeScore), Score(resp.AvgPeerScore), d.BaseScore, d.StyleTag))
		sb.WriteString(d.Narrative)
		sb.WriteString("\n\n")
		for _, h := range d.Highlights {
			sb.WriteString("- ")
			sb.WriteString(h)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("> %s\n\n", d.Guidance))
	}
}

func writeMatrix(sb *strings.Builder, res *orchestrator.Result) {
	sb.WriteString("## Peer Matrix\n\n")
	sb.WriteString("| From \\ To |")
	for _, id := range cohortIDs(res) {
		sb.WriteString(fmt.Sprintf(" %s |", id))
	}
	sb.WriteString("\n|---|")
	for range res.Matrix {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for _, row := range res.Matrix {
		sb.WriteString(fmt.Sprintf("| **%s** |", row.From.ID))
		for _, e := range row.Entries {
			sb.WriteString(fmt.Sprintf(" %d (%s) |", e.Score, e.Focus))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeTopThree(sb *strings.Builder, res *orchestrator.Result) {
	sb.WriteString("## Top Three\n\n")
	for i, resp := range res.TopThree {
		sb.WriteString(fmt.Sprintf("%d. **%s**: %s\n", i+1, resp.Detail.Model.Name, Score(resp.CompositeScore)))
	}
	sb.WriteString("\n")
}

func writeJudge(sb *strings.Builder, res *orchestrator.Result) {
	sb.WriteString(fmt.Sprintf("## %s Ranking\n\n", consensus.JudgeName))
	for _, e := range res.GeminiRanking {
		sb.WriteString(fmt.Sprintf("%d. **%s**: %s\n   %s\n", e.Rank, e.Response.Detail.Model.Name, Score(e.Score), e.Rationale))
	}
	sb.WriteString("\n")
}

// WriteReport writes the report to <baseDir>/reports/<date>-<slug>-<fingerprint>.md
func WriteReport(r *Report, baseDir string) (string, error) {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	filename := fmt.Sprintf("%s-%s-%s.md",
		created.Format("2006-01-02"), sanitizeFilename(Title(r.Result)), r.Result.Prompt.Fingerprint)

	reportsDir := filepath.Join(baseDir, "reports")
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	path := filepath.Join(reportsDir, filename)
	if err := os.WriteFile(path, []byte(Markdown(r)), 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// Score formats a score with the shortest exact decimal, so 68 prints as "68"
func Score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cohortNames(res *orchestrator.Result) []string {
	names := make([]string, len(res.Matrix))
	for i, row := range res.Matrix {
		names[i] = row.From.Name
	}
	return names
}

func modelName(res *orchestrator.Result, id string) string {
	if resp, ok := res.Response(id); ok {
		return resp.Detail.Model.Name
	}
	return id
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-3])) + "..."
}

// sanitizeFilename removes/replaces characters unsuitable for filenames
func sanitizeFilename(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == '_':
			sb.WriteRune(r)
		}
	}

	result := sb.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	result = strings.Trim(result, "-")

	if result == "" {
		result = "evaluation"
	}
	if len(result) > 50 {
		result = strings.TrimRight(result[:50], "-")
	}
	return result
}
