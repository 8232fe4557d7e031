package consensus

import (
	"fmt"
	"slices"

	"arena/internal/seed"
	"arena/internal/synth"
)

// JudgeName is the label of the simulated secondary judge.
const JudgeName = "Gemini-3-Pro"

const (
	judgeCompositeWeight = 0.6
	judgePeerWeight      = 0.3
	judgeDeltaSpread     = 12
	defaultLens          = "overall balance"
)

var judgeAngles = []string{
	"trustworthiness under cross-model scrutiny",
	"factual cohesion with the source context",
	"decision-readiness for stakeholders",
	"multimodal attribution depth",
	"clarity for downstream automation",
	"alignment with human preference signals",
}

// JudgeEntry is one row of the judge ranking.
type JudgeEntry struct {
	Rank      int            `json:"rank"`
	Response  ScoredResponse `json:"response"`
	Score     float64        `json:"score"`
	Rationale string         `json:"rationale"`
}

// JudgeRanking re-scores the top candidates and assigns dense ranks 1..k.
// Candidates with equal judge scores keep the order they came in.
func JudgeRanking(top []ScoredResponse, promptSeed string) []JudgeEntry {
	entries := make([]JudgeEntry, 0, len(top))
	for _, response := range top {
		judgeSeed := promptSeed + "-gemini-" + response.ModelID()
		lens := seed.PickOr(judgeAngles, judgeSeed, defaultLens)
		delta := seed.Mod(judgeSeed+"-delta", judgeDeltaSpread)

		score := float64(response.CompositeScore*judgeCompositeWeight) +
			float64(response.AvgPeerScore*judgePeerWeight) +
			float64(delta)

		entries = append(entries, JudgeEntry{
			Response: response,
			Score:    synth.Round1(score),
			Rationale: fmt.Sprintf("%s prioritizes %s and notes the framing as %s.",
				JudgeName, lens, response.Detail.StyleTag),
		})
	}

	slices.SortStableFunc(entries, func(a, b JudgeEntry) int {
		return compareDesc(a.Score, b.Score)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Winner returns the rank-1 entry, if any.
func Winner(ranking []JudgeEntry) (JudgeEntry, bool) {
	if len(ranking) == 0 {
		return JudgeEntry{}, false
	}
	return ranking[0], true
}
