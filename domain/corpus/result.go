package corpus

import (
	"textlens/domain/core"
	"textlens/domain/metrics"
)

// FrameworkAnalysis pairs one framework's metric record with its generated
// narrative for a single parameter text.
type FrameworkAnalysis struct {
	Metrics   metrics.Record     `json:"metrics"`
	Narrative *metrics.Narrative `json:"analysis,omitempty"`
}

// ParameterAnalysis is the full measurement set for one parameter text.
type ParameterAnalysis struct {
	Text          string                       `json:"text"`
	Themes        []metrics.ThemeCount         `json:"themes"`
	Sentiment     metrics.Sentiment            `json:"sentiment"`
	SemanticStyle metrics.SemanticStyle        `json:"semantic_style"`
	Theoretical   map[string]FrameworkAnalysis `json:"theoretical_analysis"`
}

// ResponseAnalysis is the analysis of one (segment, model) response.
type ResponseAnalysis struct {
	SegmentID        int                          `json:"segment_id"`
	PromptType       string                       `json:"prompt_type"`
	Prompt           string                       `json:"prompt"`
	Model            string                       `json:"model"`
	FullResponse     string                       `json:"full_response"`
	OverallSentiment metrics.Sentiment            `json:"overall_sentiment"`
	Parameters       map[string]ParameterAnalysis `json:"parameters"`
}

// ModelReport is the per-model rollup. Models with zero analyzable responses
// are omitted from the result entirely rather than emitted as zero-averages.
type ModelReport struct {
	OverallStats metrics.OverallStats                 `json:"overall_stats"`
	Sentiment    metrics.SentimentSummary             `json:"sentiment"`
	Theoretical  map[string]metrics.FrameworkAverages `json:"theoretical_analysis"`
	Responses    []ResponseAnalysis                   `json:"image_responses"`
}

// Comparative is the corpus-wide cross-model block.
type Comparative struct {
	// Themes maps "<param>_themes" to the pooled ranked theme list.
	Themes map[string][]metrics.ThemeCount `json:"themes"`
	// Frameworks holds per-framework cross-model commentary.
	Frameworks map[string]metrics.ComparativeNarrative `json:"theoretical_comparisons"`
	// ScoreCoherence is the Pearson correlation between consistency and
	// alignment series per framework across all analyzed responses.
	ScoreCoherence map[string]float64 `json:"score_coherence,omitempty"`
}

// AnalysisResult is the engine's complete output for one run.
type AnalysisResult struct {
	RunID       core.RunID              `json:"run_id"`
	GeneratedAt core.Timestamp          `json:"generated_at"`
	Models      map[string]*ModelReport `json:"llms"`
	Comparative Comparative             `json:"comparative_analysis"`
}
