// internal/consensus/consensus.go
package consensus

import (
	"slices"

	"arena/internal/seed"
	"arena/internal/synth"
)

// Blend weights for the composite score
const (
	baseWeight  = 0.55
	peerWeight  = 0.45
	bonusSpread = 6
)

// TopCandidates is how many composite leaders the judge re-ranks.
const TopCandidates = 3

// ScoredResponse wraps a synthesized response with the scores it received.
type ScoredResponse struct {
	Detail          synth.Response         `json:"detail"`
	CompositeScore  float64                `json:"compositeScore"`
	AvgPeerScore    float64                `json:"avgPeerScore"`
	PeerAssessments []synth.PeerAssessment `json:"peerAssessments"`
}

// ModelID is shorthand for Detail.Model.ID
func (r ScoredResponse) ModelID() string {
	return r.Detail.Model.ID
}

// Received returns the assessments whose target is modelID, in input order.
func Received(assessments []synth.PeerAssessment, modelID string) []synth.PeerAssessment {
	var peers []synth.PeerAssessment
	for _, a := range assessments {
		if a.ToID == modelID {
			peers = append(peers, a)
		}
	}
	return peers
}

// AveragePeer is the mean score of peers, or 0 when there are none.
func AveragePeer(peers []synth.PeerAssessment) float64 {
	sum := 0
	for _, p := range peers {
		sum += p.Score
	}
	n := len(peers)
	if n == 0 {
		n = 1
	}
	return float64(sum) / float64(n)
}

// Composite blends each response's base score with the average score it received
// and a hashed bonus. Output keeps the order of responses.
func Composite(responses []synth.Response, assessments []synth.PeerAssessment, promptSeed string) []ScoredResponse {
	scored := make([]ScoredResponse, 0, len(responses))
	for _, detail := range responses {
		peers := Received(assessments, detail.Model.ID)
		avgPeer := AveragePeer(peers)
		bonus := seed.Mod(promptSeed+"-"+detail.Model.ID+"-bonus", bonusSpread)

		// the blend uses the unrounded average; only the stored value is rounded
		composite := float64(float64(detail.BaseScore)*baseWeight) + float64(avgPeer*peerWeight) + float64(bonus)

		scored = append(scored, ScoredResponse{
			Detail:          detail,
			CompositeScore:  synth.Round1(composite),
			AvgPeerScore:    synth.Round1(avgPeer),
			PeerAssessments: peers,
		})
	}
	return scored
}

// SortByComposite orders responses by composite score, highest first.
// Ties keep their input order.
func SortByComposite(responses []ScoredResponse) {
	slices.SortStableFunc(responses, func(a, b ScoredResponse) int {
		return compareDesc(a.CompositeScore, b.CompositeScore)
	})
}

// TopN returns a sorted copy of the n best responses by composite score.
// The input slice is not modified.
func TopN(responses []ScoredResponse, n int) []ScoredResponse {
	sorted := slices.Clone(responses)
	SortByComposite(sorted)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
