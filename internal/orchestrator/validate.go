package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"arena/internal/models"
)

// Default cohort bounds
const (
	DefaultMinCohort = 4
	DefaultMaxCohort = 5
)

var (
	// ErrInvalidRequest wraps every validation failure
	ErrInvalidRequest = errors.New("invalid evaluation request")

	ErrCohortTooSmall    = errors.New("cohort too small")
	ErrCohortTooLarge    = errors.New("cohort too large")
	ErrMissingText       = errors.New("text prompt requires text")
	ErrMissingImage      = errors.New("image prompt requires an image")
	ErrMissingInput      = errors.New("multimodal prompt requires text or an image")
	ErrUnknownPromptType = errors.New("unknown prompt type")
)

// Limits bounds the cohort size accepted by Validate.
type Limits struct {
	Min int
	Max int
}

func DefaultLimits() Limits {
	return Limits{Min: DefaultMinCohort, Max: DefaultMaxCohort}
}

// Validate checks the preconditions Run relies on. Every returned error
// matches ErrInvalidRequest and one of the specific sentinels.
func Validate(cohort []models.ModelInfo, prompt models.Prompt, limits Limits) error {
	switch {
	case len(cohort) < limits.Min:
		return invalid(ErrCohortTooSmall, "selected %d, need at least %d", len(cohort), limits.Min)
	case len(cohort) > limits.Max:
		return invalid(ErrCohortTooLarge, "selected %d, at most %d allowed", len(cohort), limits.Max)
	}

	seen := make(map[string]bool, len(cohort))
	for _, m := range cohort {
		if seen[m.ID] {
			return invalid(models.ErrDuplicateModel, "%q", m.ID)
		}
		seen[m.ID] = true
	}

	hasText, hasImage := prompt.HasText(), prompt.HasImage()

	switch prompt.Type {
	case models.PromptText:
		if !hasText {
			return invalid(ErrMissingText, "")
		}
	case models.PromptImage:
		if !hasImage {
			return invalid(ErrMissingImage, "")
		}
	case models.PromptMultimodal:
		if !hasText && !hasImage {
			return invalid(ErrMissingInput, "")
		}
	default:
		return invalid(ErrUnknownPromptType, "%q", string(prompt.Type))
	}
	return nil
}

func invalid(reason error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, reason)
	}
	return fmt.Errorf("%w: %w: %s", ErrInvalidRequest, reason, fmt.Sprintf(format, args...))
}

// NewPrompt normalizes raw form input into a Prompt. Text is trimmed and
// dropped when blank. Text prompts never carry an image.
func NewPrompt(t models.PromptType, text, imageName, imageDataURL string) models.Prompt {
	p := models.Prompt{Type: t, Text: strings.TrimSpace(text)}
	if t != models.PromptText {
		p.ImageName = imageName
		p.ImageDataURL = imageDataURL
	}
	return p
}
