// Package synth derives response content and scores from hashed seed strings.
package synth

import (
	"fmt"
	"slices"
	"strings"

	"arena/internal/models"
	"arena/internal/seed"
)

const (
	highlightCount = 3

	imageThread      = "Extracts composition cues—contrast, depth, and subject framing—to position the visual story."
	multimodalThread = "Aligns linguistic hypotheses with visual anchors, highlighting where each channel validates the other."
)

// Response is the synthesized content for one model in one run.
type Response struct {
	Model      models.ModelInfo `json:"model"`
	Narrative  string           `json:"narrative"`
	Highlights []string         `json:"highlights"`
	Guidance   string           `json:"guidance"`
	BaseScore  int              `json:"baseScore"`
	StyleTag   string           `json:"styleTag"`
}

// ResponseSeed is the prompt seed used for content and base scores.
// A missing image name contributes "no-image".
func ResponseSeed(p models.Prompt) string {
	imageName := p.ImageName
	if imageName == "" {
		imageName = "no-image"
	}
	return fmt.Sprintf("%s-%s-%s", p.Type, p.Text, imageName)
}

// GenerateResponses builds one Response per cohort member, in cohort order.
func GenerateResponses(cohort []models.ModelInfo, prompt models.Prompt) []Response {
	promptSeed := ResponseSeed(prompt)
	responses := make([]Response, 0, len(cohort))
	for _, m := range cohort {
		responses = append(responses, GenerateResponse(m, prompt.Type, promptSeed))
	}
	return responses
}

// GenerateResponse builds the content for a single model.
func GenerateResponse(m models.ModelInfo, promptType models.PromptType, promptSeed string) Response {
	modelSeed := m.ID + "-" + promptSeed
	return Response{
		Model:      m,
		Narrative:  Narrative(m, promptType, modelSeed),
		Highlights: Highlights(modelSeed),
		Guidance:   Guidance(promptSeed + "-" + m.ID),
		BaseScore:  BaseScore(m, promptSeed),
		StyleTag:   seed.PickOr(styleTags, modelSeed+"-style", defaultStyleTag),
	}
}

// Narrative assembles the three base sentences plus the prompt-type thread.
func Narrative(m models.ModelInfo, promptType models.PromptType, key string) string {
	intro := seed.PickOr(highlightIntros, key+"-intro", "")
	focus := seed.PickOr(highlightFocus, key+"-focus", "")
	outcome := seed.PickOr(highlightOutcomes, key+"-outcome", "")

	threads := []string{
		fmt.Sprintf("%s %s, translating intent into cross-modal checkpoints.", intro, focus),
		fmt.Sprintf("Connects signal across text and visuals to surface %s.", outcome),
		fmt.Sprintf("Augments %s's strengths by sequencing reasoning phases.", m.Name),
	}

	switch promptType {
	case models.PromptImage:
		threads = slices.Insert(threads, 1, imageThread)
	case models.PromptMultimodal:
		threads = append(threads, multimodalThread)
	}

	return strings.Join(threads, " ")
}

// Highlights draws three bullets and drops exact duplicates, keeping first-seen order.
// Fewer than three bullets come back when draws collide.
func Highlights(key string) []string {
	bullets := make([]string, 0, highlightCount)
	for i := 0; i < highlightCount; i++ {
		intro := seed.PickOr(highlightIntros, fmt.Sprintf("%s-highlight-%d", key, i), "")
		focus := seed.PickOr(highlightFocus, fmt.Sprintf("%s-focus-%d", key, i), "")
		outcome := seed.PickOr(highlightOutcomes, fmt.Sprintf("%s-outcome-%d", key, i), "")
		bullets = append(bullets, fmt.Sprintf("%s %s, %s.", intro, focus, outcome))
	}
	return uniqueInOrder(bullets)
}

func uniqueInOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// Guidance returns one coaching sentence.
func Guidance(key string) string {
	stem := seed.PickOr(guidanceStems, key+"-stem", "")
	object := seed.PickOr(guidanceObjects, key+"-obj", "")
	return fmt.Sprintf("%s %s to maintain momentum between evaluation rounds.", stem, object)
}
