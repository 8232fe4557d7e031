// Package commands handles slash command parsing for the arena TUI.
package commands

import (
	"strings"

	"arena/internal/models"
)

// Command interface for all command types
type Command interface {
	Type() string
}

// Help returns help text
type Help struct{}

func (Help) Type() string { return "help" }

// SetType switches the prompt type
type SetType struct {
	PromptType models.PromptType
}

func (SetType) Type() string { return "type" }

// AttachImage loads an image file into the prompt
type AttachImage struct {
	Path string
}

func (AttachImage) Type() string { return "image" }

// ClearImage removes the attached image
type ClearImage struct{}

func (ClearImage) Type() string { return "image_clear" }

// ToggleModel adds or removes a model from the cohort
type ToggleModel struct {
	ID string
}

func (ToggleModel) Type() string { return "toggle" }

// Run starts an evaluation with the current cohort and prompt
type Run struct{}

func (Run) Type() string { return "run" }

// Pick marks a response as the user's favorite
type Pick struct {
	ID string
}

func (Pick) Type() string { return "pick" }

// View names a results tab
type View string

const (
	ViewResponses View = "responses"
	ViewMatrix    View = "matrix"
	ViewTop       View = "top"
	ViewJudge     View = "judge"
)

// Views lists the results tabs in display order.
var Views = []View{ViewResponses, ViewMatrix, ViewTop, ViewJudge}

// ShowView switches the results tab
type ShowView struct {
	View View
}

func (ShowView) Type() string { return "view" }

// Export writes the current results as a markdown report
type Export struct {
	Dir string
}

func (Export) Type() string { return "export" }

// Quit leaves the program
type Quit struct{}

func (Quit) Type() string { return "quit" }

// ParseError represents a command parsing error
type ParseError struct {
	Message string
}

func (ParseError) Type() string { return "error" }

// Parse parses user input and returns the appropriate Command.
// Returns nil if the input is not a slash command.
func Parse(input string) Command {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/help", "/?":
		return Help{}

	case "/type":
		if len(args) == 0 {
			return ParseError{Message: "/type requires one of: text, image, mixed"}
		}
		t, ok := models.ParsePromptType(args[0])
		if !ok {
			return ParseError{Message: "unknown prompt type: " + args[0]}
		}
		return SetType{PromptType: t}

	case "/image":
		if len(args) == 0 {
			return ParseError{Message: "/image requires a path or 'clear'"}
		}
		if len(args) == 1 && strings.EqualFold(args[0], "clear") {
			return ClearImage{}
		}
		// paths may contain spaces
		return AttachImage{Path: strings.Join(args, " ")}

	case "/toggle":
		if len(args) == 0 {
			return ParseError{Message: "/toggle requires a model id"}
		}
		return ToggleModel{ID: strings.ToLower(args[0])}

	case "/run", "/evaluate":
		return Run{}

	case "/pick":
		if len(args) == 0 {
			return ParseError{Message: "/pick requires a model id"}
		}
		return Pick{ID: strings.ToLower(args[0])}

	case "/view":
		if len(args) == 0 {
			return ParseError{Message: "/view requires one of: responses, matrix, top, judge"}
		}
		v := View(strings.ToLower(args[0]))
		for _, known := range Views {
			if v == known {
				return ShowView{View: v}
			}
		}
		return ParseError{Message: "unknown view: " + args[0]}

	case "/export":
		return Export{Dir: strings.Join(args, " ")}

	case "/quit", "/exit":
		return Quit{}

	default:
		return ParseError{Message: "unknown command: " + cmd}
	}
}

// HelpText returns the help text for all available commands.
func HelpText() string {
	return `Available commands:
  /help                  - Show this help
  /type <text|image|mixed> - Switch the prompt type
  /image <path>          - Attach an image to the prompt
  /image clear           - Remove the attached image
  /toggle <model-id>     - Add or remove a model from the cohort
  /run                   - Evaluate the prompt with the selected models
  /pick <model-id>       - Mark a response as your favorite
  /view <tab>            - Show responses, matrix, top or judge
  /export [dir]          - Write a markdown report
  /quit                  - Exit`
}
