package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"arena/internal/consensus"
	"arena/internal/orchestrator"
)

type jsonReport struct {
	RunID     string `json:"runId"`
	CreatedAt string `json:"createdAt,omitempty"`
	*orchestrator.Result
	Preference *consensus.Alignment `json:"preference,omitempty"`
}

// JSON writes the report as indented JSON. Keys follow the result data
// model: compositeScore, avgPeerScore, geminiRanking and so on.
func JSON(w io.Writer, r *Report) error {
	out := jsonReport{
		RunID:      r.RunID,
		Result:     r.Result,
		Preference: r.Preference,
	}
	if !r.CreatedAt.IsZero() {
		out.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
