// Package metrics defines the measurement records the extractors produce and
// the arithmetic helpers they share. Records are value types: extraction
// builds new ones, aggregation folds over them, nothing mutates in place.
package metrics

import "math"

// Record is one framework's measurements for one text unit.
type Record struct {
	Framework    string       `json:"framework,omitempty"`
	Qualitative  Qualitative  `json:"qualitative"`
	Quantitative Quantitative `json:"quantitative"`
}

// Qualitative holds raw signal counts and the categorical labels derived from
// them. Each framework documents its fixed key set next to its extractor.
type Qualitative struct {
	Counts map[string]int    `json:"counts"`
	Labels map[string]string `json:"labels"`
}

// Quantitative holds the normalized scores and density ratios.
// ConsistencyScore and AlignmentScore are always within [0,1].
type Quantitative struct {
	ConsistencyScore float64            `json:"consistency_score"`
	AlignmentScore   float64            `json:"alignment_score"`
	Ratios           map[string]float64 `json:"ratios,omitempty"`

	// MarkerWords carries the literal matched spans for the frameworks that
	// cite them (SRTOL, Code-Meshing): original casing, order of appearance,
	// duplicates retained.
	MarkerWords []string `json:"marker_words,omitempty"`
}

// Narrative is the templated prose analysis derived from one Record.
type Narrative struct {
	PatternDescription            string   `json:"pattern_description"`
	RhetoricalInterpretation      string   `json:"rhetorical_interpretation"`
	CulturalPoliticalImplications string   `json:"cultural_political_implications"`
	KeyExamples                   []string `json:"key_examples"`
	GestureExamples               []string `json:"gesture_examples,omitempty"`
	TheoristsCited                []string `json:"theorists_cited"`
}

// ComparativeNarrative is the cross-model commentary for one framework.
type ComparativeNarrative struct {
	Description    string `json:"description"`
	Interpretation string `json:"interpretation"`
	Implications   string `json:"implications"`
}

// Sentiment is the lexicon-based polarity/subjectivity record.
type Sentiment struct {
	Polarity      float64 `json:"polarity"`     // -1 to 1
	Subjectivity  float64 `json:"subjectivity"` // 0 to 1
	Emotion       string  `json:"emotion"`
	PositiveWords int     `json:"positive_words"`
	NegativeWords int     `json:"negative_words"`
	NeutralWords  int     `json:"neutral_words"`
}

// ThemeCount is one ranked theme. Ranking is by descending count with
// first-encountered order breaking ties.
type ThemeCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Semantic-style dimension records.

type CulturalMarkers struct {
	SpanishTerms        int `json:"spanish_terms"`
	CulturalReferences  int `json:"cultural_references"`
	GestureDescriptions int `json:"gesture_descriptions"`
	Total               int `json:"total_cultural_markers"`
}

type SentenceComplexity struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	MaxSentenceLength int     `json:"max_sentence_length"`
	MinSentenceLength int     `json:"min_sentence_length"`
	SentenceCount     int     `json:"sentence_count"`
}

type WordChoices struct {
	EmotionalVsNeutral float64 `json:"emotional_vs_neutral"`
	ConcreteVsAbstract float64 `json:"concrete_vs_abstract"`
	FormalVsInformal   float64 `json:"formal_vs_informal"`
	EmotionalWords     int     `json:"emotional_words"`
	ConcreteWords      int     `json:"concrete_words"`
	FormalWords        int     `json:"formal_words"`
}

type GrammaticalStructures struct {
	ActiveVoice  int     `json:"active_voice"`
	PassiveVoice int     `json:"passive_voice"`
	Questions    int     `json:"questions"`
	Imperatives  int     `json:"imperatives"`
	VoiceRatio   float64 `json:"voice_ratio"`
}

type RhetoricalDevices struct {
	Metaphors           int `json:"metaphors"`
	Similes             int `json:"similes"`
	Personification     int `json:"personification"`
	RepetitionInstances int `json:"repetition_instances"`
	TotalDevices        int `json:"total_devices"`
}

type CodeSwitchImplications struct {
	SwitchCount     int      `json:"switch_count"`
	ImpliedFunction string   `json:"implied_function"`
	Switches        []string `json:"switches"`
}

// SemanticStyle bundles the five style dimensions plus cultural markers and
// code-switch implications for one text unit.
type SemanticStyle struct {
	CulturalMarkers        CulturalMarkers        `json:"cultural_markers"`
	SentenceComplexity     SentenceComplexity     `json:"sentence_complexity"`
	WordChoices            WordChoices            `json:"word_choices"`
	GrammaticalStructures  GrammaticalStructures  `json:"grammatical_structures"`
	RhetoricalDevices      RhetoricalDevices      `json:"rhetorical_devices"`
	CodeSwitchImplications CodeSwitchImplications `json:"code_switching_implications"`
}

// Aggregate records.

// FrameworkAverages is the per-model rollup for one framework.
type FrameworkAverages struct {
	AvgConsistency    float64 `json:"avg_consistency"`
	AvgAlignment      float64 `json:"avg_alignment"`
	ConsistencyStdDev float64 `json:"consistency_std_dev"`
	Samples           int     `json:"samples"`
}

// SentimentSummary is the per-model sentiment rollup.
type SentimentSummary struct {
	AveragePolarity     float64 `json:"average_polarity"`
	AverageSubjectivity float64 `json:"average_subjectivity"`
	OverallEmotion      string  `json:"overall_emotion"`
}

// OverallStats counts a model's contribution to the corpus.
type OverallStats struct {
	TotalResponses int `json:"total_responses"`
	TotalWords     int `json:"total_words"`
}

// Scoring helpers. Every ratio in the engine floors its denominator at 1:
// degenerate input yields zeros, never a division fault.

// Saturate maps a raw signal onto [0,1], reaching 1.0 at the saturation
// constant. Saturation constants are fixed per-framework calibration data.
func Saturate(raw, saturation float64) float64 {
	v := raw / saturation
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// PercentOf returns count/max(total,1)*100.
func PercentOf(count, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(count) / float64(total) * 100
}

// RatioOf returns a/max(b,1).
func RatioOf(a, b int) float64 {
	if b < 1 {
		b = 1
	}
	return float64(a) / float64(b)
}

// Round3 rounds to three decimals (scores).
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round2 rounds to two decimals (density ratios).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
