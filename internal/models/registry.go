// internal/models/registry.go
package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownModel   = errors.New("unknown model")
	ErrDuplicateModel = errors.New("duplicate model")
)

// catalog is the static, compiled-in list of selectable models.
var catalog = []ModelInfo{
	{
		ID:         "gpt-4o",
		Name:       "GPT-4o",
		Provider:   "OpenAI",
		Modalities: []string{"Text", "Vision", "Audio"},
		Strengths:  []string{"balanced reasoning", "tool orchestration", "structured plans"},
	},
	{
		ID:         "claude-3-5-sonnet",
		Name:       "Claude 3.5 Sonnet",
		Provider:   "Anthropic",
		Modalities: []string{"Text", "Vision"},
		Strengths:  []string{"ethical framing", "long-context synthesis", "safety analysis"},
	},
	{
		ID:         "gemini-2-flash",
		Name:       "Gemini 2.0 Flash",
		Provider:   "Google",
		Modalities: []string{"Text", "Vision", "Video"},
		Strengths:  []string{"fast iteration", "multimodal grounding", "summarization"},
	},
	{
		ID:         "llama-4-vision",
		Name:       "LLaMA 4 Vision",
		Provider:   "Meta",
		Modalities: []string{"Text", "Vision"},
		Strengths:  []string{"open weights", "vision-language fusion", "edge deploy"},
	},
	{
		ID:         "grok-vision",
		Name:       "Grok Vision",
		Provider:   "xAI",
		Modalities: []string{"Text", "Vision"},
		Strengths:  []string{"creative elaboration", "contextual humor", "live data"},
	},
	{
		ID:         "mistral-large",
		Name:       "Mistral Large 2",
		Provider:   "Mistral",
		Modalities: []string{"Text"},
		Strengths:  []string{"dense knowledge", "concise output", "program synthesis"},
	},
	{
		ID:         "command-r-plus",
		Name:       "Cohere Command R+",
		Provider:   "Cohere",
		Modalities: []string{"Text"},
		Strengths:  []string{"retrieval fusion", "enterprise guardrails", "analytics"},
	},
}

// Registry holds the model catalog
type Registry struct {
	models map[string]ModelInfo
	order  []string // Preserve catalog order for consistent display
}

// NewRegistry creates a registry over the built-in catalog
func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]ModelInfo, len(catalog)),
		order:  make([]string, 0, len(catalog)),
	}
	for _, m := range catalog {
		r.models[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

// Get returns a model by ID
func (r *Registry) Get(id string) (ModelInfo, bool) {
	m, ok := r.models[id]
	return m, ok
}

// All returns all models in catalog order
func (r *Registry) All() []ModelInfo {
	result := make([]ModelInfo, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.models[id])
	}
	return result
}

// IDs returns all model IDs in catalog order
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Count returns the catalog size
func (r *Registry) Count() int {
	return len(r.order)
}

// Cohort resolves ids to identities. The result is in catalog order,
// regardless of the order ids were given in.
func (r *Registry) Cohort(ids []string) ([]ModelInfo, error) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := r.models[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModel, id)
		}
		if selected[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModel, id)
		}
		selected[id] = true
	}

	cohort := make([]ModelInfo, 0, len(ids))
	for _, id := range r.order {
		if selected[id] {
			cohort = append(cohort, r.models[id])
		}
	}
	return cohort, nil
}
