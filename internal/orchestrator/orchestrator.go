// internal/orchestrator/orchestrator.go
package orchestrator

import (
	"fmt"
	"strconv"

	"arena/internal/consensus"
	"arena/internal/models"
	"arena/internal/seed"
	"arena/internal/synth"
)

const fingerprintLen = 10

// Placeholder values for a matrix cell with no recorded assessment
const (
	missingScore         = 0
	missingFocus         = "clarity"
	missingJustification = "uses default calibration because no assessment was recorded."
)

// PromptEcho is the prompt as submitted, plus its display fingerprint.
type PromptEcho struct {
	models.Prompt
	Fingerprint string `json:"fingerprint"`
}

// MatrixEntry is one cell of the peer matrix: how the row model scored To.
type MatrixEntry struct {
	To            models.ModelInfo `json:"to"`
	Score         int              `json:"score"`
	Focus         string           `json:"focus"`
	Justification string           `json:"justification"`
}

// MatrixRow holds every assessment made by From, in cohort order.
type MatrixRow struct {
	From    models.ModelInfo `json:"from"`
	Entries []MatrixEntry    `json:"entries"`
}

// Result is everything one simulation run produces.
type Result struct {
	Prompt        PromptEcho                 `json:"prompt"`
	Responses     []consensus.ScoredResponse `json:"responses"`
	Matrix        []MatrixRow                `json:"matrix"`
	TopThree      []consensus.ScoredResponse `json:"topThree"`
	GeminiRanking []consensus.JudgeEntry     `json:"geminiRanking"`
}

// Response returns the scored response for modelID.
func (r *Result) Response(modelID string) (consensus.ScoredResponse, bool) {
	for _, resp := range r.Responses {
		if resp.ModelID() == modelID {
			return resp, true
		}
	}
	return consensus.ScoredResponse{}, false
}

// Align compares a user's favorite with the judge's top pick.
func (r *Result) Align(choiceID string) (consensus.Alignment, error) {
	return consensus.Align(r.Responses, r.GeminiRanking, choiceID)
}

// SimulationSeed is the prompt seed used for peer assessments, bonuses,
// the judge and the fingerprint. A missing image name contributes "image",
// unlike synth.ResponseSeed which uses "no-image".
func SimulationSeed(p models.Prompt) string {
	imageName := p.ImageName
	if imageName == "" {
		imageName = "image"
	}
	return fmt.Sprintf("%s-%s-%s", p.Type, p.Text, imageName)
}

// Fingerprint is the hex form of the seed hash, cut to at most 10 characters.
func Fingerprint(promptSeed string) string {
	hex := strconv.FormatUint(uint64(seed.Hash(promptSeed)), 16)
	if len(hex) > fingerprintLen {
		hex = hex[:fingerprintLen]
	}
	return hex
}

// PeerAssessments builds all N*N edges, rows in cohort order.
// Self pairs are seeded with "-self", cross pairs with "-peer".
func PeerAssessments(cohort []models.ModelInfo, promptSeed string) []synth.PeerAssessment {
	assessments := make([]synth.PeerAssessment, 0, len(cohort)*len(cohort))
	for _, from := range cohort {
		for _, to := range cohort {
			suffix := "-peer"
			if from.ID == to.ID {
				suffix = "-self"
			}
			assessments = append(assessments, synth.Assess(from, to, promptSeed+suffix))
		}
	}
	return assessments
}

// BuildMatrix lays assessments out as a dense cohort x cohort grid.
// A missing edge becomes a zero-score placeholder instead of an error.
func BuildMatrix(cohort []models.ModelInfo, assessments []synth.PeerAssessment) []MatrixRow {
	type edge struct{ from, to string }
	index := make(map[edge]synth.PeerAssessment, len(assessments))
	for _, a := range assessments {
		key := edge{a.FromID, a.ToID}
		if _, dup := index[key]; !dup {
			index[key] = a
		}
	}

	matrix := make([]MatrixRow, 0, len(cohort))
	for _, from := range cohort {
		row := MatrixRow{From: from, Entries: make([]MatrixEntry, 0, len(cohort))}
		for _, to := range cohort {
			entry := MatrixEntry{
				To:            to,
				Score:         missingScore,
				Focus:         missingFocus,
				Justification: missingJustification,
			}
			if a, ok := index[edge{from.ID, to.ID}]; ok {
				entry.Score = a.Score
				entry.Focus = a.Focus
				entry.Justification = a.Justification
			}
			row.Entries = append(row.Entries, entry)
		}
		matrix = append(matrix, row)
	}
	return matrix
}

// Run simulates one evaluation round for cohort and prompt.
//
// Run is a pure function: it does no I/O, keeps no state between calls and
// returns identical results for identical inputs. It does not validate its
// inputs; see Validate. Behaviour for an empty cohort is unspecified.
func Run(cohort []models.ModelInfo, prompt models.Prompt) *Result {
	promptSeed := SimulationSeed(prompt)

	base := synth.GenerateResponses(cohort, prompt)
	assessments := PeerAssessments(cohort, promptSeed)
	scored := consensus.Composite(base, assessments, promptSeed)
	matrix := BuildMatrix(cohort, assessments)
	top := consensus.TopN(scored, consensus.TopCandidates)
	ranking := consensus.JudgeRanking(top, promptSeed)
	consensus.SortByComposite(scored)

	return &Result{
		Prompt:        PromptEcho{Prompt: prompt, Fingerprint: Fingerprint(promptSeed)},
		Responses:     scored,
		Matrix:        matrix,
		TopThree:      top,
		GeminiRanking: ranking,
	}
}

// Orchestrator resolves model ids against the catalog, checks caller
// preconditions and runs the simulation.
type Orchestrator struct {
	registry *models.Registry
	limits   Limits
}

func New(registry *models.Registry, limits Limits) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		limits:   limits,
	}
}

// Limits returns the cohort size bounds in use
func (o *Orchestrator) Limits() Limits {
	return o.limits
}

// Evaluate resolves ids, validates the request and runs it.
func (o *Orchestrator) Evaluate(ids []string, prompt models.Prompt) (*Result, error) {
	cohort, err := o.registry.Cohort(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := Validate(cohort, prompt, o.limits); err != nil {
		return nil, err
	}
	return Run(cohort, prompt), nil
}
