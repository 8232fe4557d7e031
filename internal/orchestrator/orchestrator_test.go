// internal/orchestrator/orchestrator_test.go
package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/consensus"
	"arena/internal/models"
	"arena/internal/synth"
)

const quantumPrompt = "Explain quantum tunneling to a 10-year-old."

func cohort(t *testing.T, ids ...string) []models.ModelInfo {
	t.Helper()
	c, err := models.NewRegistry().Cohort(ids)
	require.NoError(t, err)
	return c
}

func textPrompt(text string) models.Prompt {
	return models.Prompt{Type: models.PromptText, Text: text}
}

func responseIDs(responses []consensus.ScoredResponse) []string {
	ids := make([]string, len(responses))
	for i, r := range responses {
		ids[i] = r.ModelID()
	}
	return ids
}

func TestSimulationSeed(t *testing.T) {
	assert.Equal(t, "text-"+quantumPrompt+"-image", SimulationSeed(textPrompt(quantumPrompt)))
	assert.Equal(t, "image--skyline.png", SimulationSeed(models.Prompt{Type: models.PromptImage, ImageName: "skyline.png"}))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "499ea167", Fingerprint(SimulationSeed(textPrompt(quantumPrompt))))
	assert.Equal(t, "0", Fingerprint(""))
	assert.LessOrEqual(t, len(Fingerprint("anything at all")), fingerprintLen)
}

func TestRun_FourModelTextPrompt(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision")
	res := Run(c, textPrompt(quantumPrompt))

	assert.Equal(t, "499ea167", res.Prompt.Fingerprint)
	assert.Equal(t, models.PromptText, res.Prompt.Type)
	assert.Equal(t, quantumPrompt, res.Prompt.Text)

	require.Len(t, res.Responses, 4)
	assert.Equal(t, []string{"llama-4-vision", "gemini-2-flash", "claude-3-5-sonnet", "gpt-4o"}, responseIDs(res.Responses))

	wants := []struct {
		base      int
		avg, comp float64
	}{
		{68, 84.8, 78.5},
		{72, 80.3, 76.7},
		{75, 69.3, 74.4},
		{73, 68.8, 74.1},
	}
	for i, w := range wants {
		r := res.Responses[i]
		assert.Equal(t, w.base, r.Detail.BaseScore, r.ModelID())
		assert.InDelta(t, w.avg, r.AvgPeerScore, 1e-9, r.ModelID())
		assert.InDelta(t, w.comp, r.CompositeScore, 1e-9, r.ModelID())
		assert.Len(t, r.PeerAssessments, 4)
		assert.Len(t, r.Detail.Highlights, 3)
	}

	assert.Equal(t, []string{"llama-4-vision", "gemini-2-flash", "claude-3-5-sonnet"}, responseIDs(res.TopThree))

	require.Len(t, res.GeminiRanking, 3)
	judged := []struct {
		id        string
		score     float64
		rationale string
	}{
		{"gemini-2-flash", 80.1, "Gemini-3-Pro prioritizes multimodal attribution depth and notes the framing as risk-aware architect."},
		{"llama-4-vision", 74.5, "Gemini-3-Pro prioritizes multimodal attribution depth and notes the framing as multi-turn facilitator."},
		{"claude-3-5-sonnet", 66.4, "Gemini-3-Pro prioritizes clarity for downstream automation and notes the framing as precision explainer."},
	}
	for i, j := range judged {
		e := res.GeminiRanking[i]
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, j.id, e.Response.ModelID())
		assert.InDelta(t, j.score, e.Score, 1e-9)
		assert.Equal(t, j.rationale, e.Rationale)
	}
}

func TestRun_MatrixLayout(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision")
	res := Run(c, textPrompt(quantumPrompt))

	want := [][]int{
		{61, 72, 88, 92},
		{66, 63, 70, 72},
		{78, 84, 85, 80},
		{70, 58, 78, 95},
	}
	require.Len(t, res.Matrix, 4)
	for i, row := range res.Matrix {
		assert.Equal(t, c[i].ID, row.From.ID)
		require.Len(t, row.Entries, 4)
		for j, e := range row.Entries {
			assert.Equal(t, c[j].ID, e.To.ID)
			assert.Equal(t, want[i][j], e.Score, "%s -> %s", row.From.ID, e.To.ID)
		}
	}

	cell := res.Matrix[0].Entries[1]
	assert.Equal(t, "actionability", cell.Focus)
	assert.Equal(t, "balances creativity with grounded risk mitigation", cell.Justification)

	assert.Equal(t, "factuality", res.Matrix[0].Entries[0].Focus)
	assert.Equal(t, "multimodal reasoning", res.Matrix[1].Entries[0].Focus)
}

func TestRun_ThreeModelCohort(t *testing.T) {
	c := cohort(t, "gpt-4o", "mistral-large", "command-r-plus")
	res := Run(c, textPrompt(quantumPrompt))

	assert.Equal(t, []string{"command-r-plus", "gpt-4o", "mistral-large"}, responseIDs(res.Responses))
	assert.Len(t, res.TopThree, 3)
	assert.Len(t, res.Matrix, 3)
	for _, r := range res.Responses {
		assert.Len(t, r.PeerAssessments, 3)
	}

	require.Len(t, res.GeminiRanking, 3)
	assert.Equal(t, "command-r-plus", res.GeminiRanking[0].Response.ModelID())
	assert.InDelta(t, 87.6, res.GeminiRanking[0].Score, 1e-9)
	assert.InDelta(t, 68.0, res.GeminiRanking[1].Score, 1e-9)
	assert.InDelta(t, 67.6, res.GeminiRanking[2].Score, 1e-9)
}

func TestRun_FiveModelCohortKeepsTopThree(t *testing.T) {
	c := cohort(t, "gpt-4o", "grok-vision", "mistral-large", "command-r-plus", "claude-3-5-sonnet")
	res := Run(c, textPrompt(quantumPrompt))

	require.Len(t, res.Responses, 5)
	assert.Equal(t, []string{"command-r-plus", "grok-vision", "claude-3-5-sonnet", "mistral-large", "gpt-4o"}, responseIDs(res.Responses))
	assert.Equal(t, []string{"command-r-plus", "grok-vision", "claude-3-5-sonnet"}, responseIDs(res.TopThree))
	assert.Equal(t, []int{61, 72, 74, 70, 94}, func() []int {
		var scores []int
		for _, e := range res.Matrix[0].Entries {
			scores = append(scores, e.Score)
		}
		return scores
	}())
}

func TestRun_CrossCohortBaseScoresAreStable(t *testing.T) {
	p := textPrompt(quantumPrompt)
	a := Run(cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision"), p)
	b := Run(cohort(t, "gpt-4o", "grok-vision", "mistral-large", "command-r-plus", "claude-3-5-sonnet"), p)

	ra, ok := a.Response("gpt-4o")
	require.True(t, ok)
	rb, ok := b.Response("gpt-4o")
	require.True(t, ok)

	assert.Equal(t, ra.Detail, rb.Detail)
	assert.Equal(t, 73, rb.Detail.BaseScore)
	assert.NotEqual(t, ra.AvgPeerScore, rb.AvgPeerScore)
	assert.NotEqual(t, ra.CompositeScore, rb.CompositeScore)
}

func TestRun_Deterministic(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision", "grok-vision")
	p := models.Prompt{Type: models.PromptMultimodal, Text: "Describe the chart"}

	first := Run(c, p)
	second := Run(c, p)
	assert.Equal(t, first, second)
	assert.Equal(t, "7b1d48e1", first.Prompt.Fingerprint)
}

func TestRun_ImagePrompt(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision")
	p := models.Prompt{Type: models.PromptImage, ImageName: "skyline.png", ImageDataURL: "data:image/png;base64,AAAA"}
	res := Run(c, p)

	assert.Equal(t, "54081635", res.Prompt.Fingerprint)
	assert.Equal(t, "skyline.png", res.Prompt.ImageName)
	assert.Equal(t, []string{"llama-4-vision", "gemini-2-flash", "claude-3-5-sonnet", "gpt-4o"}, responseIDs(res.Responses))
	assert.InDelta(t, 85.4, res.Responses[0].CompositeScore, 1e-9)
	assert.Equal(t, "gemini-2-flash", res.GeminiRanking[0].Response.ModelID())
	assert.InDelta(t, 79.4, res.GeminiRanking[0].Score, 1e-9)
}

func TestRun_AssessmentsAreNotSymmetric(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision")
	res := Run(c, textPrompt(quantumPrompt))

	assert.Equal(t, 72, res.Matrix[0].Entries[1].Score)
	assert.Equal(t, 66, res.Matrix[1].Entries[0].Score)
}

func TestPeerAssessments(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash")
	seed := SimulationSeed(textPrompt(quantumPrompt))
	got := PeerAssessments(c, seed)

	require.Len(t, got, 9)
	for i, a := range got {
		assert.Equal(t, c[i/3].ID, a.FromID)
		assert.Equal(t, c[i%3].ID, a.ToID)
		assert.GreaterOrEqual(t, a.Score, synth.MinScore)
		assert.LessOrEqual(t, a.Score, synth.MaxScore)
	}
	assert.Equal(t, synth.Assess(c[0], c[0], seed+"-self"), got[0])
	assert.Equal(t, synth.Assess(c[0], c[1], seed+"-peer"), got[1])
}

func TestBuildMatrix_MissingEdgeUsesPlaceholder(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet")
	assessments := []synth.PeerAssessment{
		{FromID: "gpt-4o", ToID: "claude-3-5-sonnet", Score: 77, Focus: "structure", Justification: "x"},
	}

	m := BuildMatrix(c, assessments)
	require.Len(t, m, 2)
	assert.Equal(t, 77, m[0].Entries[1].Score)

	missing := m[1].Entries[0]
	assert.Equal(t, 0, missing.Score)
	assert.Equal(t, "clarity", missing.Focus)
	assert.Equal(t, "uses default calibration because no assessment was recorded.", missing.Justification)
}

func TestResult_Align(t *testing.T) {
	c := cohort(t, "gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision")
	res := Run(c, textPrompt(quantumPrompt))

	a, err := res.Align("gemini-2-flash")
	require.NoError(t, err)
	assert.True(t, a.Agrees)

	a, err = res.Align("gpt-4o")
	require.NoError(t, err)
	assert.False(t, a.Agrees)

	_, err = res.Align("nope")
	assert.ErrorIs(t, err, consensus.ErrUnknownChoice)
}

func TestOrchestrator_Evaluate(t *testing.T) {
	o := New(models.NewRegistry(), DefaultLimits())

	res, err := o.Evaluate([]string{"llama-4-vision", "gpt-4o", "gemini-2-flash", "claude-3-5-sonnet"}, textPrompt(quantumPrompt))
	require.NoError(t, err)
	assert.Equal(t, "llama-4-vision", res.Responses[0].ModelID())
	assert.Equal(t, "gpt-4o", res.Matrix[0].From.ID)

	_, err = o.Evaluate([]string{"gpt-4o", "nope", "gemini-2-flash", "claude-3-5-sonnet"}, textPrompt(quantumPrompt))
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, models.ErrUnknownModel)

	_, err = o.Evaluate([]string{"gpt-4o", "gemini-2-flash"}, textPrompt(quantumPrompt))
	assert.ErrorIs(t, err, ErrCohortTooSmall)
}
