package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	multiliteraciesConsistencySaturation = 15.0 // total literacy references
	multiliteraciesAlignmentSaturation   = 3.0  // multimodal density percentage
)

// Multiliteracies scores meaning-making across visual, spatial, and gestural
// literacy modes.
//
// Qualitative counts: visual_literacy_refs, spatial_literacy_refs,
// gestural_literacy_refs. Labels: multimodal_integration.
type Multiliteracies struct {
	lib *text.Library
}

func NewMultiliteracies(lib *text.Library) *Multiliteracies {
	return &Multiliteracies{lib: lib}
}

func (f *Multiliteracies) ID() string   { return IDMultiliteracies }
func (f *Multiliteracies) Name() string { return "Multiliteracies" }
func (f *Multiliteracies) Description() string {
	return "Multiple modes of meaning-making across semiotic systems"
}

func (f *Multiliteracies) Analyze(input string) metrics.Record {
	visual := f.lib.Count(text.PatternVisualLiteracy, input)
	spatial := f.lib.Count(text.PatternSpatialLiteracy, input)
	gestural := f.lib.Count(text.PatternGesturalLiteracy, input)

	totalRefs := visual + spatial + gestural
	totalWords := text.WordCount(input)
	density := metrics.PercentOf(totalRefs, totalWords)

	consistency := metrics.Saturate(float64(totalRefs), multiliteraciesConsistencySaturation)
	alignment := metrics.Saturate(density, multiliteraciesAlignmentSaturation)

	return metrics.Record{
		Framework: IDMultiliteracies,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"visual_literacy_refs":   visual,
				"spatial_literacy_refs":  spatial,
				"gestural_literacy_refs": gestural,
			},
			Labels: map[string]string{
				"multimodal_integration": metrics.Grade(float64(totalRefs), []metrics.Band{
					{Above: 10, Label: "High"},
					{Above: 5, Label: "Medium"},
				}, "Low"),
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"multimodal_density": metrics.Round2(density),
			},
		},
	}
}
