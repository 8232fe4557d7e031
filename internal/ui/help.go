// internal/ui/help.go
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"arena/internal/commands"
	"arena/internal/consensus"
)

// Help overlay content and rendering

var (
	// Help section title style
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan).
			MarginBottom(1)

	// Help section header style
	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Yellow).
				MarginTop(1)

	// Help key style (for keybindings)
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Help command style (for slash commands)
	helpCmdStyle = lipgloss.NewStyle().
			Foreground(Magenta)

	// Help description style
	helpDescStyle = lipgloss.NewStyle().
			Foreground(White)

	// Help dim style (for secondary info)
	helpDimStyle = lipgloss.NewStyle().
			Foreground(Dim)
)

// HelpContent returns the formatted help overlay content
func HelpContent(width, height int) string {
	var content strings.Builder

	// Title
	title := helpTitleStyle.Render("ARENA HELP")
	content.WriteString(title)
	content.WriteString("\n\n")

	// Keybindings section
	content.WriteString(helpSectionStyle.Render("KEYBINDINGS"))
	content.WriteString("\n\n")

	keybindings := []struct {
		key  string
		desc string
	}{
		{"Esc", "Switch focus between input and model list"},
		{"Up / Down", "Move the model cursor"},
		{"Space / x", "Toggle the model under the cursor (list focus)"},
		{"Tab", "Cycle prompt type: Text, Image, Mixed"},
		{"Enter", "Run evaluation (input text becomes the prompt)"},
		{"1-4 / [ ]", "Switch results tab (list focus)"},
		{"p", "Pick the model under the cursor as favorite"},
		{"PgUp / PgDn", "Scroll results"},
		{"F1 / ?", "Toggle this help overlay"},
		{"Ctrl+C / q", "Quit"},
	}

	for _, kb := range keybindings {
		key := helpKeyStyle.Width(14).Render(kb.key)
		desc := helpDescStyle.Render(kb.desc)
		content.WriteString("  " + key + "  " + desc + "\n")
	}

	// Slash commands section
	content.WriteString("\n")
	content.WriteString(helpSectionStyle.Render("SLASH COMMANDS"))
	content.WriteString("\n\n")

	for _, line := range strings.Split(commands.HelpText(), "\n")[1:] {
		cmd, desc, _ := strings.Cut(strings.TrimSpace(line), " - ")
		cmdStr := helpCmdStyle.Width(26).Render(strings.TrimSpace(cmd))
		content.WriteString("  " + cmdStr + "  " + helpDescStyle.Render(desc) + "\n")
	}

	// Evaluation protocol section
	content.WriteString("\n")
	content.WriteString(helpSectionStyle.Render("EVALUATION PROTOCOL"))
	content.WriteString("\n\n")

	protocol := []string{
		"1. Pick a cohort of models and a text, image or mixed prompt",
		"2. Every model answers, then scores every response including its own",
		"3. Composite = base score blended with the average peer score",
		"4. The top three go to " + consensus.JudgeName + " for a final ranking",
		"5. Pick your favorite to see if you agree with the judge",
		"",
		"Results are deterministic: the same cohort and prompt always",
		"produce the same scores and the same fingerprint.",
	}

	for _, line := range protocol {
		if line == "" {
			content.WriteString("\n")
		} else {
			content.WriteString("  " + helpDimStyle.Render(line) + "\n")
		}
	}

	// Footer
	content.WriteString("\n")
	footer := helpDimStyle.Render("Press F1 or Esc to close this help")
	content.WriteString(lipgloss.PlaceHorizontal(width-8, lipgloss.Center, footer))

	// Build the overlay box
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 3).
		MaxWidth(width - 10).
		MaxHeight(height - 4)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlayStyle.Render(content.String()),
	)
}

// renderHelp renders the help overlay (called from app.go)
func (m Model) renderHelp() string {
	return HelpContent(m.width, m.height)
}
