package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"arena/internal/context"
	"arena/internal/models"
	"arena/internal/orchestrator"
)

// Answers holds everything collected by the evaluation wizard.
type Answers struct {
	ModelIDs  []string
	Type      models.PromptType
	Text      string
	ImagePath string
}

// RunEvaluationWizard asks for a cohort and a prompt with a huh form.
// defaults pre-populates the fields.
func RunEvaluationWizard(in io.Reader, out io.Writer, registry *models.Registry, limits orchestrator.Limits, defaults Answers) (*Answers, error) {
	ans := defaults
	if ans.Type == "" {
		ans.Type = models.PromptText
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Models").
				Description(fmt.Sprintf("Pick %s models to evaluate", sizeRange(limits))).
				Options(modelOptions(registry)...).
				Limit(limits.Max).
				Value(&ans.ModelIDs).
				Validate(func(ids []string) error {
					return validateCohortSize(ids, limits)
				}),
			huh.NewSelect[models.PromptType]().
				Title("Prompt type").
				Options(promptTypeOptions()...).
				Value(&ans.Type),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Prompt").
				Description("What should the models respond to?").
				Value(&ans.Text).
				Validate(func(s string) error {
					if ans.Type == models.PromptText && strings.TrimSpace(s) == "" {
						return fmt.Errorf("prompt text is required")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return ans.Type == models.PromptImage }),
		huh.NewGroup(
			huh.NewInput().
				Title("Image").
				Description("Path to an image file").
				Placeholder("./chart.png").
				Value(&ans.ImagePath).
				Validate(func(s string) error {
					return validateImagePath(s, ans.Type, ans.Text)
				}),
		).WithHideFunc(func() bool { return ans.Type == models.PromptText }),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	ans.Text = strings.TrimSpace(ans.Text)
	ans.ImagePath = strings.TrimSpace(ans.ImagePath)
	return &ans, nil
}

func modelOptions(registry *models.Registry) []huh.Option[string] {
	all := registry.All()
	opts := make([]huh.Option[string], 0, len(all))
	for _, m := range all {
		label := fmt.Sprintf("%s (%s) %s", m.Name, m.Provider, strings.Join(m.Modalities, "/"))
		opts = append(opts, huh.NewOption(label, m.ID))
	}
	return opts
}

func promptTypeOptions() []huh.Option[models.PromptType] {
	opts := make([]huh.Option[models.PromptType], 0, len(models.PromptTypes))
	for _, t := range models.PromptTypes {
		opts = append(opts, huh.NewOption(t.Label(), t))
	}
	return opts
}

func sizeRange(limits orchestrator.Limits) string {
	if limits.Min == limits.Max {
		return fmt.Sprint(limits.Min)
	}
	return fmt.Sprintf("%d to %d", limits.Min, limits.Max)
}

func validateCohortSize(ids []string, limits orchestrator.Limits) error {
	switch {
	case len(ids) < limits.Min:
		return fmt.Errorf("select at least %d models", limits.Min)
	case len(ids) > limits.Max:
		return errors.New(orchestrator.MaxCohortMessage(limits.Max))
	}
	return nil
}

func validateImagePath(path string, t models.PromptType, text string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		if t == models.PromptMultimodal && strings.TrimSpace(text) != "" {
			return nil
		}
		return fmt.Errorf("an image is required")
	}
	return context.ValidatePath(path)
}
