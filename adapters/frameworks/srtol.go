package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

// Saturation constants: raw signal levels at which SRTOL reads as fully
// applied. Hand-tuned calibration data, ported as-is.
const (
	srtolConsistencySaturation = 10.0 // code-switches + gestures
	srtolAlignmentSaturation   = 5.0  // code-switch percentage of word count
)

// SRTOL scores linguistic ownership per the Students' Right to Their Own
// Language resolution: code-switching, vernacular authority, embodied
// gesture markers.
//
// Qualitative counts: code_switching_instances, vernacular_markers,
// gesture_descriptions. Labels: cultural_authenticity, linguistic_ownership.
type SRTOL struct {
	lib *text.Library
}

func NewSRTOL(lib *text.Library) *SRTOL {
	return &SRTOL{lib: lib}
}

func (f *SRTOL) ID() string   { return IDSRTOL }
func (f *SRTOL) Name() string { return "Students' Right to Their Own Language" }
func (f *SRTOL) Description() string {
	return "Linguistic ownership, vernacular authority, and code-meshing markers"
}

func (f *SRTOL) Analyze(input string) metrics.Record {
	switches := text.DetectCodeSwitching(input)
	codeSwitches := len(switches)
	totalWords := text.WordCount(input)

	vernacular := f.lib.Count(text.PatternVernacular, input)
	gestures := f.lib.Count(text.PatternGesture, input)

	codeSwitchRatio := metrics.PercentOf(codeSwitches, totalWords)
	vernacularDensity := metrics.PercentOf(vernacular, totalWords)

	consistency := metrics.Saturate(float64(codeSwitches+gestures), srtolConsistencySaturation)
	alignment := metrics.Saturate(codeSwitchRatio, srtolAlignmentSaturation)

	return metrics.Record{
		Framework: IDSRTOL,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"code_switching_instances": codeSwitches,
				"vernacular_markers":       vernacular,
				"gesture_descriptions":     gestures,
			},
			Labels: map[string]string{
				"cultural_authenticity": metrics.Grade(float64(gestures), []metrics.Band{
					{Above: 5, Label: "High"},
					{Above: 2, Label: "Medium"},
				}, "Low"),
				"linguistic_ownership": metrics.Grade(codeSwitchRatio, []metrics.Band{
					{Above: 3, Label: "Strong"},
					{Above: 1, Label: "Moderate"},
				}, "Weak"),
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"code_switch_ratio":  metrics.Round2(codeSwitchRatio),
				"vernacular_density": metrics.Round2(vernacularDensity),
			},
			MarkerWords: markerWords(switches),
		},
	}
}
