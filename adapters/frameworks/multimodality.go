package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	multimodalityConsistencySaturation = 12.0 // sensory description count
	multimodalityAlignmentSaturation   = 8.0  // interpretation marker count
)

// Multimodality scores visual-textual relationships: sensory description
// versus interpretive integration of image and meaning.
//
// Qualitative counts: visual_descriptions, spatial_descriptions,
// kinesthetic_descriptions, interpretation_integration.
// Labels: multimodal_approach.
type Multimodality struct {
	lib *text.Library
}

func NewMultimodality(lib *text.Library) *Multimodality {
	return &Multimodality{lib: lib}
}

func (f *Multimodality) ID() string   { return IDMultimodality }
func (f *Multimodality) Name() string { return "Multimodality" }
func (f *Multimodality) Description() string {
	return "Visual-textual relationships and modal affordances"
}

func (f *Multimodality) Analyze(input string) metrics.Record {
	visual := f.lib.Count(text.PatternVisualDesc, input)
	spatial := f.lib.Count(text.PatternSpatialDesc, input)
	kinesthetic := f.lib.Count(text.PatternKinestheticDesc, input)
	interpretation := f.lib.Count(text.PatternInterpretation, input)

	totalMultimodal := visual + spatial + kinesthetic
	totalWords := text.WordCount(input)

	consistency := metrics.Saturate(float64(totalMultimodal), multimodalityConsistencySaturation)
	alignment := metrics.Saturate(float64(interpretation), multimodalityAlignmentSaturation)

	// Integrated beats Descriptive beats Basic; checked in that order.
	approach := "Basic"
	switch {
	case interpretation > 5:
		approach = "Integrated"
	case totalMultimodal > 8:
		approach = "Descriptive"
	}

	return metrics.Record{
		Framework: IDMultimodality,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"visual_descriptions":        visual,
				"spatial_descriptions":       spatial,
				"kinesthetic_descriptions":   kinesthetic,
				"interpretation_integration": interpretation,
			},
			Labels: map[string]string{
				"multimodal_approach": approach,
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"multimodal_ratio": metrics.Round2(metrics.PercentOf(totalMultimodal, totalWords)),
			},
		},
	}
}
