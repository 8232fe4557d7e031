package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"arena/internal/commands"
	"arena/internal/consensus"
	"arena/internal/context"
	"arena/internal/export"
	"arena/internal/models"
	"arena/internal/orchestrator"
)

func (m *Model) selectedIDs() []string {
	var ids []string
	for _, info := range m.catalog {
		if m.selected[info.ID] {
			ids = append(ids, info.ID)
		}
	}
	return ids
}

func (m *Model) toggleModel(id string) {
	if _, ok := m.registry.Get(id); !ok {
		m.setError(fmt.Sprintf("unknown model: %s", id))
		return
	}
	m.setStatus("")
	if m.selected[id] {
		delete(m.selected, id)
		return
	}
	if len(m.selected) >= m.limits.Max {
		m.setError(orchestrator.MaxCohortMessage(m.limits.Max))
		return
	}
	m.selected[id] = true
}

func (m *Model) cycleType(delta int) {
	i := slices.Index(models.PromptTypes, m.promptType)
	n := len(models.PromptTypes)
	m.setType(models.PromptTypes[(i+delta+n)%n])
}

// setType switches the prompt type. Switching to text drops the image.
func (m *Model) setType(t models.PromptType) {
	m.promptType = t
	if t == models.PromptText {
		m.image = nil
	}
}

func (m *Model) attachImage(path string) {
	if m.promptType == models.PromptText {
		m.setType(models.PromptImage)
	}
	asset, err := context.LoadImage(path, m.maxImageBytes)
	if err != nil {
		// keep any previously attached image
		if errors.Is(err, context.ErrNotImage) {
			m.setError(context.ErrNotImage.Error())
		} else {
			m.setError(err.Error())
		}
		return
	}
	m.image = &asset
	m.setStatus("Attached " + asset.String())
}

func (m *Model) prompt() models.Prompt {
	var name, dataURL string
	if m.image != nil {
		name, dataURL = m.image.Name, m.image.DataURL
	}
	return orchestrator.NewPrompt(m.promptType, m.text, name, dataURL)
}

func (m *Model) runEvaluation() {
	res, err := m.orch.Evaluate(m.selectedIDs(), m.prompt())
	if err != nil {
		slog.Debug("evaluation rejected", "error", err)
		if errors.Is(err, orchestrator.ErrInvalidRequest) {
			m.setError(m.limits.InvalidRequestMessage())
		} else {
			m.setError(err.Error())
		}
		return
	}

	m.result = res
	m.choice = ""
	m.view = commands.ViewResponses
	m.setStatus(fmt.Sprintf("Evaluated %d models, fingerprint %s", len(res.Responses), res.Prompt.Fingerprint))
	m.refreshResults(true)
}

func (m *Model) pick(id string) {
	if m.result == nil {
		m.setError("Run an evaluation before picking a favorite.")
		return
	}
	next := consensus.ToggleChoice(m.choice, id)
	if next != "" {
		if _, err := m.result.Align(next); err != nil {
			m.setError(err.Error())
			return
		}
	}
	m.choice = next
	m.setStatus("")
	m.refreshResults(false)
}

func (m *Model) alignment() (consensus.Alignment, bool) {
	if m.result == nil || m.choice == "" {
		return consensus.Alignment{}, false
	}
	a, err := m.result.Align(m.choice)
	return a, err == nil
}

func (m *Model) setView(v commands.View) {
	m.view = v
	m.refreshResults(true)
}

func (m *Model) cycleView(delta int) {
	i := slices.Index(commands.Views, m.view)
	n := len(commands.Views)
	m.setView(commands.Views[(i+delta+n)%n])
}

func (m *Model) exportReport(dir string) {
	if m.result == nil {
		m.setError("Nothing to export yet.")
		return
	}
	if dir == "" {
		dir = m.exportDir
	}
	report := export.NewReport(m.result, m.now())
	if a, ok := m.alignment(); ok {
		report.Preference = &a
	}
	path, err := export.WriteReport(report, dir)
	if err != nil {
		m.setError(err.Error())
		return
	}
	slog.Debug("report written", "path", path)
	m.setStatus("Report written to " + path)
}

func (m *Model) refreshResults(top bool) {
	if m.result == nil {
		return
	}
	m.viewport.SetContent(m.renderResults(m.viewport.Width))
	if top {
		m.viewport.GotoTop()
	}
}

func (m Model) renderMain() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("MULTIMODAL ARENA"))
	sb.WriteString(DimStyle.Render("  test, cross-evaluate and rank model responses"))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderCohort())
	sb.WriteString("\n")
	sb.WriteString(m.renderPromptBar())
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	switch {
	case m.statusErr:
		sb.WriteString(ErrorStyle.Render(m.status))
	case m.status != "":
		sb.WriteString(DimStyle.Render(m.status))
	}
	sb.WriteString("\n")

	if m.result != nil {
		sb.WriteString(m.renderTabs())
		sb.WriteString("\n")
		sb.WriteString(m.viewport.View())
		sb.WriteString("\n")
		sb.WriteString(m.renderPreference())
	}
	return sb.String()
}

func (m Model) renderCohort() string {
	var sb strings.Builder

	title := fmt.Sprintf("MODEL COHORT (%d selected, %d to %d)", len(m.selected), m.limits.Min, m.limits.Max)
	sb.WriteString(SectionStyle.Render(title))
	sb.WriteString("\n")

	nameWidth := 20
	for i, info := range m.catalog {
		cursor := "  "
		if i == m.cursor && m.focus == focusModels {
			cursor = CursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.selected[info.ID] {
			box = StatusOK.Render("[x]")
		}
		name := ModelStyle(info.Provider).Render(runewidth.FillRight(runewidth.Truncate(info.Name, nameWidth, "…"), nameWidth))
		detail := fmt.Sprintf("%-9s %s", info.Provider, strings.Join(info.Strengths, ", "))
		if m.width > 0 {
			detail = runewidth.Truncate(detail, max(m.width-nameWidth-12, 10), "…")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s %s", cursor, box, name, DimStyle.Render(detail)))
		if i < len(m.catalog)-1 {
			sb.WriteString("\n")
		}
	}

	box := InactiveBox
	if m.focus == focusModels {
		box = ActiveBox
	}
	return box.Render(sb.String()) + "\n"
}

func (m Model) renderPromptBar() string {
	var tabs []string
	for _, t := range models.PromptTypes {
		if t == m.promptType {
			tabs = append(tabs, ActiveTabStyle.Render(t.Label()))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(t.Label()))
		}
	}
	line := "Prompt: " + strings.Join(tabs, " | ")

	if m.promptType != models.PromptImage && m.text != "" {
		line += "  " + DimStyle.Render("text: "+runewidth.Truncate(m.text, 40, "…"))
	}
	if m.promptType != models.PromptText {
		if m.image != nil {
			line += "  " + DimStyle.Render("image: "+m.image.String())
		} else {
			line += "  " + DimStyle.Render("no image (/image <path>)")
		}
	}
	return line
}

func (m Model) renderTabs() string {
	labels := map[commands.View]string{
		commands.ViewResponses: "Responses",
		commands.ViewMatrix:    "Matrix",
		commands.ViewTop:       "Top Three",
		commands.ViewJudge:     consensus.JudgeName,
	}
	var tabs []string
	for i, v := range commands.Views {
		label := fmt.Sprintf("%d %s", i+1, labels[v])
		if v == m.view {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, "   ") + DimStyle.Render("   fingerprint "+m.result.Prompt.Fingerprint)
}

func (m Model) renderPreference() string {
	if m.choice == "" {
		return DimStyle.Render(fmt.Sprintf("Select a favorite to compare against %s. (/pick <model-id>)", consensus.JudgeName))
	}
	a, ok := m.alignment()
	if !ok {
		return ""
	}
	if a.Agrees {
		return StatusOK.Render(a.Message)
	}
	return StatusWarn.Render(a.Message)
}
