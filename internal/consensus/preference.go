package consensus

import (
	"errors"
	"fmt"
)

var ErrUnknownChoice = errors.New("choice is not part of this run")

// Alignment compares the user's favorite response with the judge's top pick.
type Alignment struct {
	ChoiceID   string `json:"choiceId"`
	JudgeTopID string `json:"judgeTopId"`
	Agrees     bool   `json:"agrees"`
	Message    string `json:"message"`
}

// Align checks choiceID against the rank-1 judge entry. choiceID must be one of responses.
func Align(responses []ScoredResponse, ranking []JudgeEntry, choiceID string) (Alignment, error) {
	found := false
	for _, r := range responses {
		if r.ModelID() == choiceID {
			found = true
			break
		}
	}
	if !found {
		return Alignment{}, fmt.Errorf("%w: %q", ErrUnknownChoice, choiceID)
	}

	a := Alignment{ChoiceID: choiceID}
	if top, ok := Winner(ranking); ok {
		a.JudgeTopID = top.Response.ModelID()
	}
	a.Agrees = a.JudgeTopID != "" && a.JudgeTopID == choiceID
	if a.Agrees {
		a.Message = fmt.Sprintf("You and %s agree on the top response.", JudgeName)
	} else {
		a.Message = fmt.Sprintf("Your selection diverges from %s's top pick, perfect for further analysis.", JudgeName)
	}
	return a, nil
}

// ToggleChoice returns the new choice after the user selects id:
// selecting the current choice again clears it.
func ToggleChoice(current, id string) string {
	if current == id {
		return ""
	}
	return id
}
