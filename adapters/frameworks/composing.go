package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	composingConsistencySaturation = 15.0 // active + passive voice instances
	composingAlignmentSaturation   = 10.0 // tentative/modal statements
)

// ComposingWithAI scores the model's self-referential positioning: agency,
// interpretive authority, and hedging.
//
// Qualitative counts: active_voice_instances, passive_voice_instances,
// definitive_statements, tentative_statements, authoritative_markers.
// Labels: positioning_style.
type ComposingWithAI struct {
	lib *text.Library
}

func NewComposingWithAI(lib *text.Library) *ComposingWithAI {
	return &ComposingWithAI{lib: lib}
}

func (f *ComposingWithAI) ID() string   { return IDComposingWithAI }
func (f *ComposingWithAI) Name() string { return "Composing with AI" }
func (f *ComposingWithAI) Description() string {
	return "AI agency, interpretive authority, and human-machine positioning"
}

func (f *ComposingWithAI) Analyze(input string) metrics.Record {
	active := f.lib.Count(text.PatternActiveSelf, input)
	passive := f.lib.Count(text.PatternPassiveHedge, input)
	definitive := f.lib.Count(text.PatternDefinitive, input)
	tentative := f.lib.Count(text.PatternTentative, input)
	authoritative := f.lib.Count(text.PatternAuthoritative, input)

	consistency := metrics.Saturate(float64(active+passive), composingConsistencySaturation)
	alignment := metrics.Saturate(float64(tentative), composingAlignmentSaturation)

	style := "Balanced"
	switch {
	case authoritative > 3:
		style = "Authoritative"
	case tentative > definitive:
		style = "Tentative"
	}

	return metrics.Record{
		Framework: IDComposingWithAI,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"active_voice_instances":  active,
				"passive_voice_instances": passive,
				"definitive_statements":   definitive,
				"tentative_statements":    tentative,
				"authoritative_markers":   authoritative,
			},
			Labels: map[string]string{
				"positioning_style": style,
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"voice_ratio": metrics.Round2(metrics.RatioOf(active, passive)),
			},
		},
	}
}
