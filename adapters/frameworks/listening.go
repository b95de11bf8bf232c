package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	listeningConsistencySaturation = 10.0 // empathy + cultural acknowledgment
	listeningAlignmentSaturation   = 20.0 // perspective-taking pronouns
)

// RhetoricalListening scores empathetic positioning, cultural
// acknowledgment, and questioning engagement.
//
// Qualitative counts: empathy_markers, cultural_acknowledgment,
// perspective_taking, questioning_engagement. Labels: listening_stance.
type RhetoricalListening struct {
	lib *text.Library
}

func NewRhetoricalListening(lib *text.Library) *RhetoricalListening {
	return &RhetoricalListening{lib: lib}
}

func (f *RhetoricalListening) ID() string   { return IDRhetoricalListening }
func (f *RhetoricalListening) Name() string { return "Rhetorical Listening" }
func (f *RhetoricalListening) Description() string {
	return "Empathy, cultural positioning, and accountability in interpretation"
}

func (f *RhetoricalListening) Analyze(input string) metrics.Record {
	empathy := f.lib.Count(text.PatternEmpathy, input)
	cultural := f.lib.Count(text.PatternCulturalAck, input)
	perspective := f.lib.Count(text.PatternPerspective, input)
	questions := f.lib.Count(text.PatternQuestion, input)

	totalWords := text.WordCount(input)

	consistency := metrics.Saturate(float64(empathy+cultural), listeningConsistencySaturation)
	alignment := metrics.Saturate(float64(perspective), listeningAlignmentSaturation)

	return metrics.Record{
		Framework: IDRhetoricalListening,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"empathy_markers":         empathy,
				"cultural_acknowledgment": cultural,
				"perspective_taking":      perspective,
				"questioning_engagement":  questions,
			},
			Labels: map[string]string{
				"listening_stance": metrics.Grade(float64(empathy), []metrics.Band{
					{Above: 5, Label: "Deep"},
					{Above: 2, Label: "Moderate"},
				}, "Surface"),
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"empathy_density": metrics.Round2(metrics.PercentOf(empathy, totalWords)),
			},
		},
	}
}
