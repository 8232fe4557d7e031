package consensus

import (
	"testing"

	"arena/internal/models"
	"arena/internal/seed"
	"arena/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id string, composite, avg float64) ScoredResponse {
	return ScoredResponse{
		Detail:         synth.Response{Model: models.ModelInfo{ID: id}, StyleTag: "precision explainer"},
		CompositeScore: composite,
		AvgPeerScore:   avg,
	}
}

func ids(rs []ScoredResponse) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ModelID()
	}
	return out
}

func TestReceivedAndAverage(t *testing.T) {
	assessments := []synth.PeerAssessment{
		{FromID: "a", ToID: "a", Score: 60},
		{FromID: "a", ToID: "b", Score: 90},
		{FromID: "b", ToID: "a", Score: 71},
		{FromID: "b", ToID: "b", Score: 80},
	}

	peers := Received(assessments, "a")
	require.Len(t, peers, 2)
	assert.Equal(t, "a", peers[0].FromID)
	assert.Equal(t, "b", peers[1].FromID)
	assert.InDelta(t, 65.5, AveragePeer(peers), 1e-9)

	assert.Empty(t, Received(assessments, "c"))
	assert.Equal(t, 0.0, AveragePeer(nil))
}

func TestComposite_Formula(t *testing.T) {
	responses := []synth.Response{
		{Model: models.ModelInfo{ID: "a"}, BaseScore: 70},
		{Model: models.ModelInfo{ID: "b"}, BaseScore: 81},
	}
	assessments := []synth.PeerAssessment{
		{FromID: "a", ToID: "a", Score: 60},
		{FromID: "b", ToID: "a", Score: 75},
		{FromID: "a", ToID: "b", Score: 90},
		{FromID: "b", ToID: "b", Score: 85},
	}

	got := Composite(responses, assessments, "seed")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, ids(got))

	bonusA := float64(seed.Mod("seed-a-bonus", 6))
	assert.Equal(t, 67.5, got[0].AvgPeerScore)
	assert.InDelta(t, 70*0.55+67.5*0.45+bonusA, got[0].CompositeScore, 0.051)
	assert.Len(t, got[0].PeerAssessments, 2)

	bonusB := float64(seed.Mod("seed-b-bonus", 6))
	assert.Equal(t, 87.5, got[1].AvgPeerScore)
	assert.InDelta(t, 81*0.55+87.5*0.45+bonusB, got[1].CompositeScore, 0.051)
}

func TestComposite_UsesUnroundedAverage(t *testing.T) {
	responses := []synth.Response{{Model: models.ModelInfo{ID: "x"}, BaseScore: 80}}
	// 3 assessments averaging 70.333...
	assessments := []synth.PeerAssessment{
		{ToID: "x", Score: 70}, {ToID: "x", Score: 70}, {ToID: "x", Score: 71},
	}

	got := Composite(responses, assessments, "p")
	require.Len(t, got, 1)
	assert.Equal(t, 70.3, got[0].AvgPeerScore)

	// blending the rounded 70.3 would give 75.635 + bonus instead of 75.65 + bonus
	bonus := float64(seed.Mod("p-x-bonus", 6))
	assert.InDelta(t, 75.7+bonus, got[0].CompositeScore, 0.051)
}

func TestSortByComposite_StableDescending(t *testing.T) {
	rs := []ScoredResponse{
		scored("a", 70, 0),
		scored("b", 80, 0),
		scored("c", 70, 0),
		scored("d", 90, 0),
		scored("e", 80, 0),
	}

	SortByComposite(rs)
	assert.Equal(t, []string{"d", "b", "e", "a", "c"}, ids(rs))
}

func TestTopN(t *testing.T) {
	rs := []ScoredResponse{
		scored("a", 70, 0),
		scored("b", 80, 0),
		scored("c", 75, 0),
		scored("d", 60, 0),
	}

	top := TopN(rs, TopCandidates)
	assert.Equal(t, []string{"b", "c", "a"}, ids(top))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(rs))

	assert.Len(t, TopN(rs[:2], TopCandidates), 2)
	assert.Empty(t, TopN(nil, TopCandidates))
}

func TestJudgeRanking_DenseRanks(t *testing.T) {
	top := []ScoredResponse{
		scored("llama-4-vision", 78.5, 84.8),
		scored("gemini-2-flash", 76.7, 80.3),
		scored("claude-3-5-sonnet", 74.4, 69.3),
	}

	ranking := JudgeRanking(top, "text-Explain quantum tunneling to a 10-year-old.-image")
	require.Len(t, ranking, 3)
	for i, entry := range ranking {
		assert.Equal(t, i+1, entry.Rank)
		if i > 0 {
			assert.LessOrEqual(t, entry.Score, ranking[i-1].Score)
		}
		assert.Contains(t, entry.Rationale, JudgeName+" prioritizes ")
		assert.Contains(t, entry.Rationale, "notes the framing as precision explainer.")
	}

	// same seeds as the quantum tunneling reference run
	assert.Equal(t, "gemini-2-flash", ranking[0].Response.ModelID())
	assert.Equal(t, 80.1, ranking[0].Score)
	assert.Equal(t, "llama-4-vision", ranking[1].Response.ModelID())
	assert.Equal(t, 74.5, ranking[1].Score)
	assert.Equal(t, "claude-3-5-sonnet", ranking[2].Response.ModelID())
	assert.Equal(t, 66.4, ranking[2].Score)
}

func TestJudgeRanking_Empty(t *testing.T) {
	assert.Empty(t, JudgeRanking(nil, "seed"))
	_, ok := Winner(nil)
	assert.False(t, ok)
}

func TestAlign(t *testing.T) {
	responses := []ScoredResponse{scored("a", 80, 70), scored("b", 75, 72)}
	ranking := []JudgeEntry{
		{Rank: 1, Response: responses[1], Score: 77},
		{Rank: 2, Response: responses[0], Score: 75},
	}

	agree, err := Align(responses, ranking, "b")
	require.NoError(t, err)
	assert.True(t, agree.Agrees)
	assert.Equal(t, "b", agree.JudgeTopID)
	assert.Equal(t, "You and Gemini-3-Pro agree on the top response.", agree.Message)

	diverge, err := Align(responses, ranking, "a")
	require.NoError(t, err)
	assert.False(t, diverge.Agrees)
	assert.Contains(t, diverge.Message, "diverges from Gemini-3-Pro's top pick")

	_, err = Align(responses, ranking, "zzz")
	assert.ErrorIs(t, err, ErrUnknownChoice)
}

func TestToggleChoice(t *testing.T) {
	assert.Equal(t, "a", ToggleChoice("", "a"))
	assert.Equal(t, "", ToggleChoice("a", "a"))
	assert.Equal(t, "b", ToggleChoice("a", "b"))
}
