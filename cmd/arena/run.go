package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"arena/internal/config"
	"arena/internal/context"
	"arena/internal/export"
	"arena/internal/models"
	"arena/internal/orchestrator"
	"arena/internal/wizard"
)

type runFlags struct {
	models      []string
	promptType  string
	text        string
	image       string
	format      string
	pick        string
	exportDir   string
	interactive bool
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [prompt text]",
		Short: "Evaluate a prompt with a cohort of models",
		Long: `Run one evaluation round and print the results.

The cohort and prompt type default to the config file. Positional arguments
are joined into the prompt text when --text is not set.`,
		Example: `  arena run "Explain quantum tunneling to a 10-year-old."
  arena run --models gpt-4o,claude-3-5-sonnet,gemini-2-flash,llama-4-vision --image chart.png
  arena run --type mixed --text "Describe the chart" --image chart.png --format json
  arena run --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.text == "" && len(args) > 0 {
				f.text = strings.Join(args, " ")
			}
			if !cmd.Flags().Changed("export") {
				f.exportDir = opts.cfg.Output.ExportDir
			}
			return runEvaluation(cmd, opts, f)
		},
	}

	cmd.Flags().StringSliceVar(&f.models, "models", nil, "Comma-separated model ids (default from config)")
	cmd.Flags().StringVar(&f.promptType, "type", "", "Prompt type: text, image or multimodal (mixed)")
	cmd.Flags().StringVar(&f.text, "text", "", "Prompt text")
	cmd.Flags().StringVar(&f.image, "image", "", "Path to an image for image or multimodal prompts")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: table, markdown or json (default from config)")
	cmd.Flags().StringVar(&f.pick, "pick", "", "Model id of your favorite response, compared with the judge")
	cmd.Flags().StringVar(&f.exportDir, "export", "", "Also write a markdown report under <dir>/reports")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Choose cohort and prompt with an interactive form")

	return cmd
}

// resolvePromptType picks the prompt type from the flag, or infers it from
// the inputs when the flag is empty.
func resolvePromptType(flag, text, image string, fallback models.PromptType) (models.PromptType, error) {
	if flag != "" {
		t, ok := models.ParsePromptType(flag)
		if !ok {
			return "", fmt.Errorf("%w: %w: %q", orchestrator.ErrInvalidRequest, orchestrator.ErrUnknownPromptType, flag)
		}
		return t, nil
	}
	switch {
	case image != "" && strings.TrimSpace(text) != "":
		return models.PromptMultimodal, nil
	case image != "":
		return models.PromptImage, nil
	default:
		return fallback, nil
	}
}

func loadImage(path string, maxBytes int64) (context.ImageAsset, error) {
	if path == "" {
		return context.ImageAsset{}, nil
	}
	asset, err := context.LoadImage(path, maxBytes)
	if err != nil {
		if errors.Is(err, context.ErrNotImage) || errors.Is(err, context.ErrImageTooLarge) {
			return asset, fmt.Errorf("%w: %w", orchestrator.ErrInvalidRequest, err)
		}
		return asset, fmt.Errorf("loading image: %w", err)
	}
	slog.Debug("image loaded", "name", asset.Name, "mime", asset.MIME, "bytes", asset.Size)
	return asset, nil
}

func runEvaluation(cmd *cobra.Command, opts *rootOptions, f *runFlags) error {
	cfg := opts.cfg

	ids := f.models
	if len(ids) == 0 {
		ids = cfg.Cohort.Default
	}

	promptType, err := resolvePromptType(f.promptType, f.text, f.image, cfg.PromptType())
	if err != nil {
		return err
	}

	if f.interactive {
		ans, err := wizard.RunEvaluationWizard(cmd.InOrStdin(), cmd.ErrOrStderr(), opts.registry, opts.limits(), wizard.Answers{
			ModelIDs:  ids,
			Type:      promptType,
			Text:      f.text,
			ImagePath: f.image,
		})
		if err != nil {
			return err
		}
		ids, promptType, f.text, f.image = ans.ModelIDs, ans.Type, ans.Text, ans.ImagePath
	}

	format := f.format
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case config.FormatTable, config.FormatMarkdown, config.FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	asset, err := loadImage(f.image, cfg.Prompt.MaxImageBytes)
	if err != nil {
		return err
	}
	prompt := orchestrator.NewPrompt(promptType, f.text, asset.Name, asset.DataURL)

	orch := orchestrator.New(opts.registry, opts.limits())
	res, err := orch.Evaluate(ids, prompt)
	if err != nil {
		return err
	}
	slog.Debug("evaluation complete", "fingerprint", res.Prompt.Fingerprint, "models", len(res.Responses))

	report := export.NewReport(res, time.Now())
	if f.pick != "" {
		a, err := res.Align(strings.ToLower(f.pick))
		if err != nil {
			return fmt.Errorf("%w: %w", orchestrator.ErrInvalidRequest, err)
		}
		report.Preference = &a
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		err = export.JSON(out, report)
	case config.FormatMarkdown:
		err = printMarkdown(out, export.Markdown(report), cfg.Output.Width)
	default:
		err = printTable(out, report, cfg.Output.Width)
	}
	if err != nil {
		return err
	}

	if f.exportDir != "" {
		path, err := export.WriteReport(report, f.exportDir)
		if err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
	}
	return nil
}
