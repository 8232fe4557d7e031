package synth

import (
	"math"

	"arena/internal/models"
	"arena/internal/seed"
)

// Score bounds. Every base and peer score lands in [MinScore, MaxScore].
const (
	MinScore = 40
	MaxScore = 100
)

// PeerAssessment is one directed evaluation edge, from -> to.
// Self-assessments (FromID == ToID) are included.
type PeerAssessment struct {
	FromID        string `json:"fromId"`
	ToID          string `json:"toId"`
	Score         int    `json:"score"`
	Focus         string `json:"focus"`
	Justification string `json:"justification"`
}

// Round rounds half-way cases toward positive infinity.
func Round(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// Round1 rounds x to one decimal place using Round.
func Round1(x float64) float64 {
	return Round(x*10) / 10
}

// ClampScore bounds score to [MinScore, MaxScore] and rounds it to an integer.
func ClampScore(score float64) int {
	return int(Round(math.Min(MaxScore, math.Max(MinScore, score))))
}

// BaseScore blends quality, grounding and creativity sub-scores.
// It depends only on the model and the prompt seed, never on the cohort.
func BaseScore(m models.ModelInfo, promptSeed string) int {
	quality := float64(68 + seed.Mod(m.ID+"-"+promptSeed, 18))
	grounding := float64(64 + seed.Mod(promptSeed+"-"+m.ID, 22))
	creativity := float64(60 + seed.Mod(promptSeed+"-"+m.Provider, 26))

	// explicit conversions keep each product rounded on its own (no FMA),
	// so the blend is identical on every architecture
	weighted := float64(quality*0.45) + float64(grounding*0.35) + float64(creativity*0.2)
	return ClampScore(weighted)
}

// Assess scores the response of to as seen by from.
//
// Cross-pair scores carry a modifier: +4 when from sorts before to, -2 otherwise,
// plus a hashed 0..5 jitter. Scores are therefore not symmetric.
func Assess(from, to models.ModelInfo, promptSeed string) PeerAssessment {
	salt := from.ID + "->" + to.ID + "-" + promptSeed

	base := 58 + seed.Mod(salt+"-score", 38)
	modifier := 0
	if from.ID != to.ID {
		if seed.CodeUnitLess(from.ID, to.ID) {
			modifier = 4
		} else {
			modifier = -2
		}
		modifier += seed.Mod(salt+"-mod", 6)
	}

	return PeerAssessment{
		FromID:        from.ID,
		ToID:          to.ID,
		Score:         ClampScore(float64(base + modifier)),
		Focus:         seed.PickOr(evaluationFacets, salt+"-facet", DefaultFocus),
		Justification: seed.PickOr(crossJustifications, salt+"-why", DefaultJustification),
	}
}
