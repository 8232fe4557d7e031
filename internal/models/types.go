// internal/models/types.go
package models

import "strings"

// ModelInfo is an immutable catalog identity for one model.
// ID is the key used in every derived seed string.
type ModelInfo struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Provider   string   `json:"provider" yaml:"provider"`
	Modalities []string `json:"modalities" yaml:"modalities"`
	Strengths  []string `json:"strengths" yaml:"strengths"`
}

// SupportsVision reports whether the model lists a vision modality.
func (m ModelInfo) SupportsVision() bool {
	for _, mod := range m.Modalities {
		if strings.EqualFold(mod, "vision") {
			return true
		}
	}
	return false
}

// PromptType selects which inputs a prompt carries
type PromptType string

const (
	PromptText       PromptType = "text"
	PromptImage      PromptType = "image"
	PromptMultimodal PromptType = "multimodal"
)

// PromptTypes lists the supported prompt types in display order.
var PromptTypes = []PromptType{PromptText, PromptImage, PromptMultimodal}

// ParsePromptType accepts the canonical names plus "mixed" as an alias for multimodal.
func ParsePromptType(s string) (PromptType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return PromptText, true
	case "image":
		return PromptImage, true
	case "multimodal", "mixed":
		return PromptMultimodal, true
	default:
		return "", false
	}
}

// Label returns the short toggle label shown in the UI
func (t PromptType) Label() string {
	switch t {
	case PromptText:
		return "Text"
	case PromptImage:
		return "Image"
	case PromptMultimodal:
		return "Mixed"
	default:
		return string(t)
	}
}

// Prompt is only a seed source. Its content is never interpreted.
// Empty Text and ImageName mean "absent".
type Prompt struct {
	Type         PromptType `json:"type"`
	Text         string     `json:"text,omitempty"`
	ImageName    string     `json:"imageName,omitempty"`
	ImageDataURL string     `json:"imageDataUrl,omitempty"`
}

// HasText reports whether the prompt carries non-blank text.
func (p Prompt) HasText() bool {
	return strings.TrimSpace(p.Text) != ""
}

// HasImage reports whether the prompt carries an image payload.
func (p Prompt) HasImage() bool {
	return p.ImageDataURL != ""
}
