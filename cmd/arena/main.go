package main

import (
	"errors"
	"fmt"
	"os"

	"arena/internal/orchestrator"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Evaluation completed
	ExitInvalid = 1 // Cohort or prompt rejected
	ExitError   = 2 // Configuration or runtime error
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, orchestrator.ErrInvalidRequest):
		return ExitInvalid
	default:
		return ExitError
	}
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
