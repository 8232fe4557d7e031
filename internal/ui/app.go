package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"arena/internal/commands"
	"arena/internal/context"
	"arena/internal/models"
	"arena/internal/orchestrator"
)

// rows used by everything except the results viewport
const chromeHeight = 20

type focus int

const (
	focusInput focus = iota
	focusModels
)

// Options configures a new UI model.
type Options struct {
	Registry      *models.Registry
	Limits        orchestrator.Limits
	DefaultCohort []string
	PromptType    models.PromptType
	MaxImageBytes int64
	ExportDir     string
}

type Model struct {
	width, height int
	ready         bool

	registry *models.Registry
	orch     *orchestrator.Orchestrator
	limits   orchestrator.Limits
	catalog  []models.ModelInfo

	selected map[string]bool
	cursor   int
	focus    focus

	promptType    models.PromptType
	text          string
	image         *context.ImageAsset
	maxImageBytes int64
	exportDir     string

	input    textinput.Model
	viewport viewport.Model

	result *orchestrator.Result
	view   commands.View
	choice string

	status    string
	statusErr bool
	showHelp  bool

	now func() time.Time
}

func New(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = models.NewRegistry()
	}
	if opts.Limits == (orchestrator.Limits{}) {
		opts.Limits = orchestrator.DefaultLimits()
	}
	if opts.PromptType == "" {
		opts.PromptType = models.PromptText
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	selected := make(map[string]bool, len(opts.DefaultCohort))
	for _, id := range opts.DefaultCohort {
		if _, ok := opts.Registry.Get(id); ok {
			selected[id] = true
		}
	}

	ti := textinput.New()
	ti.Placeholder = "Describe the scenario you'd like each AI model to address... (/help for commands)"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	vp := viewport.New(80, 10)
	vp.MouseWheelEnabled = true

	return Model{
		registry:      opts.Registry,
		orch:          orchestrator.New(opts.Registry, opts.Limits),
		limits:        opts.Limits,
		catalog:       opts.Registry.All(),
		selected:      selected,
		promptType:    opts.PromptType,
		maxImageBytes: opts.MaxImageBytes,
		exportDir:     opts.ExportDir,
		input:         ti,
		viewport:      vp,
		view:          commands.ViewResponses,
		now:           time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch key {
		case "f1", "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch key {
	case "f1":
		m.showHelp = true
		return m, nil
	case "tab":
		m.cycleType(1)
		return m, nil
	case "shift+tab":
		m.cycleType(-1)
		return m, nil
	case "esc":
		m.toggleFocus()
		return m, nil
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	}

	if m.focus == focusModels {
		return m.handleModelsKey(key)
	}

	if key == "enter" {
		return m, m.submitLine()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleModelsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "k":
		m.moveCursor(-1)
	case "j":
		m.moveCursor(1)
	case " ", "x":
		if m.cursor < len(m.catalog) {
			m.toggleModel(m.catalog[m.cursor].ID)
		}
	case "enter", "r":
		m.runEvaluation()
	case "[", "left", "h":
		m.cycleView(-1)
	case "]", "right", "l":
		m.cycleView(1)
	case "1", "2", "3", "4":
		m.setView(commands.Views[int(key[0]-'1')])
	case "p":
		if m.result != nil && m.cursor < len(m.catalog) {
			m.pick(m.catalog[m.cursor].ID)
		}
	case "?":
		m.showHelp = true
	case "i":
		m.toggleFocus()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusModels
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.catalog)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// submitLine handles the input line: slash commands run, anything else
// becomes the prompt text and starts an evaluation.
func (m *Model) submitLine() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()

	if cmd := commands.Parse(line); cmd != nil {
		return m.execute(cmd)
	}
	if line != "" {
		m.text = line
	}
	m.runEvaluation()
	return nil
}

func (m *Model) execute(cmd commands.Command) tea.Cmd {
	slog.Debug("ui command", "type", cmd.Type())

	switch c := cmd.(type) {
	case commands.Help:
		m.showHelp = true
	case commands.SetType:
		m.setType(c.PromptType)
	case commands.AttachImage:
		m.attachImage(c.Path)
	case commands.ClearImage:
		m.image = nil
		m.setStatus("Image removed.")
	case commands.ToggleModel:
		m.toggleModel(c.ID)
	case commands.Run:
		m.runEvaluation()
	case commands.Pick:
		m.pick(c.ID)
	case commands.ShowView:
		m.setView(c.View)
	case commands.Export:
		m.exportReport(c.Dir)
	case commands.Quit:
		return tea.Quit
	case commands.ParseError:
		m.setError(c.Message)
	}
	return nil
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) resize() {
	m.input.Width = max(m.width-4, 10)
	m.viewport.Width = max(m.width, 20)
	m.viewport.Height = max(m.height-chromeHeight, 3)
	m.refreshResults(false)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}
