package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	bigDataConsistencySaturation = 8.0 // pattern + generalization markers
	bigDataAlignmentSaturation   = 6.0 // abstraction markers
)

// BigData scores the computational/distant-reading stance of a response:
// pattern recognition, generalization versus specificity, abstraction.
//
// Qualitative counts: pattern_recognition, generalizations,
// specific_details, abstraction_markers. Labels: analytical_approach.
type BigData struct {
	lib *text.Library
}

func NewBigData(lib *text.Library) *BigData {
	return &BigData{lib: lib}
}

func (f *BigData) ID() string   { return IDBigData }
func (f *BigData) Name() string { return "Big Data" }
func (f *BigData) Description() string {
	return "Pattern recognition, abstraction, and computational rhetoric"
}

func (f *BigData) Analyze(input string) metrics.Record {
	patterns := f.lib.Count(text.PatternRecognition, input)
	general := f.lib.Count(text.PatternGeneralization, input)
	specific := f.lib.Count(text.PatternSpecificDetail, input)
	abstract := f.lib.Count(text.PatternAbstractionMarker, input)

	consistency := metrics.Saturate(float64(patterns+general), bigDataConsistencySaturation)
	alignment := metrics.Saturate(float64(abstract), bigDataAlignmentSaturation)

	approach := "Balanced"
	switch {
	case general > specific:
		approach = "Abstract"
	case specific > general:
		approach = "Concrete"
	}

	return metrics.Record{
		Framework: IDBigData,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"pattern_recognition": patterns,
				"generalizations":     general,
				"specific_details":    specific,
				"abstraction_markers": abstract,
			},
			Labels: map[string]string{
				"analytical_approach": approach,
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"abstraction_ratio": metrics.Round2(metrics.RatioOf(general, specific)),
			},
		},
	}
}
