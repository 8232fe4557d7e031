package synth

// Fixed vocabularies. Every list is non-empty; Pick never sees an empty slice.
var (
	evaluationFacets = []string{
		"clarity",
		"grounding",
		"factuality",
		"multimodal reasoning",
		"structure",
		"actionability",
	}

	styleTags = []string{
		"tactical strategist",
		"dialectic analyst",
		"vision-first planner",
		"risk-aware architect",
		"precision explainer",
		"multi-turn facilitator",
	}

	highlightIntros = []string{
		"Synthesizes",
		"Prioritizes",
		"Surfaces",
		"Contrasts",
		"Triangulates",
		"Maps",
		"Benchmarks",
	}

	highlightFocus = []string{
		"root causes behind the prompt",
		"visual cues that shift interpretation",
		"user intent into measurable KPIs",
		"temporal dependencies across phases",
		"audience cohorts with tailored hooks",
		"risk vectors requiring mitigation",
		"experimentation avenues for fast feedback",
	}

	highlightOutcomes = []string{
		"delivering an execution-ready blueprint",
		"grounding claims in observable evidence",
		"stressing the critical path to impact",
		"providing narrative arcs for stakeholders",
		"exposing adjacent opportunities",
		"flagging ambiguous instructions early",
		"aligning metrics with desired signals",
	}

	guidanceStems = []string{
		"Double down on",
		"Consider instrumenting",
		"Establish explicit guardrails for",
		"Prototype around",
		"Co-create review loops for",
		"Document fallback paths covering",
		"Calibrate expectations regarding",
	}

	guidanceObjects = []string{
		"fail-fast experiments",
		"cross-modal evidence capture",
		"stakeholder briefings",
		"model critique prompts",
		"evaluation rubrics",
		"progressive disclosure strategies",
		"alignment checkpoints",
	}

	crossJustifications = []string{
		"keeps terminology consistent with the prompt’s framing",
		"anchors claims in the shared evidence set",
		"over-indexes on narrative flair at the expense of facts",
		"misses an opportunity to weave the visual cues in",
		"balances creativity with grounded risk mitigation",
		"would benefit from clearer prioritization of next steps",
		"elevates the most unique insight from the cohort",
		"could expand on calibration between modalities",
	}
)

// Fallbacks used if a vocabulary lookup ever comes back empty.
const (
	DefaultFocus         = "clarity"
	DefaultJustification = "provides a balanced take that covers the requested dimensions."
	defaultStyleTag      = "structured synthesize"
)

// Facets returns a copy of the evaluation facet vocabulary.
func Facets() []string {
	return append([]string(nil), evaluationFacets...)
}

// StyleTags returns a copy of the style tag vocabulary.
func StyleTags() []string {
	return append([]string(nil), styleTags...)
}
