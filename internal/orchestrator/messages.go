package orchestrator

import "fmt"

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func countWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return fmt.Sprint(n)
}

// MaxCohortMessage is shown when a selection would exceed the cohort limit.
func MaxCohortMessage(limit int) string {
	return fmt.Sprintf("Select up to %s models per evaluation.", countWord(limit))
}

// InvalidRequestMessage is the user-facing text for any ErrInvalidRequest.
func (l Limits) InvalidRequestMessage() string {
	return fmt.Sprintf("Provide the required prompt inputs and select between %s and %s models before evaluating.",
		countWord(l.Min), countWord(l.Max))
}
