package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

const (
	codeMeshingConsistencySaturation = 8.0 // total code-switch count
	codeMeshingAlignmentSaturation   = 5.0 // seamless (unmarked) switch count
)

// Positional thirds for switch placement analysis.
const (
	beginningBoundary = 0.33
	middleBoundary    = 0.67
)

// CodeMeshing scores Spanish-English integration: placement of switches
// across the text, seamless versus marked switching, and grammatical
// blending.
//
// Qualitative counts: total_code_switches, beginning_switches,
// middle_switches, end_switches, seamless_integration, marked_switches,
// grammatical_blending. Labels: meshing_style.
type CodeMeshing struct {
	lib *text.Library
}

func NewCodeMeshing(lib *text.Library) *CodeMeshing {
	return &CodeMeshing{lib: lib}
}

func (f *CodeMeshing) ID() string   { return IDCodeMeshing }
func (f *CodeMeshing) Name() string { return "Code-Meshing" }
func (f *CodeMeshing) Description() string {
	return "Language blending and translingual practice"
}

func (f *CodeMeshing) Analyze(input string) metrics.Record {
	switches := text.DetectCodeSwitching(input)
	total := len(switches)

	// Bucket switches into thirds by true offset into the original text.
	textLen := len(input)
	var beginning, middle, end int
	for _, s := range switches {
		pos := float64(s.Start)
		switch {
		case pos < float64(textLen)*beginningBoundary:
			beginning++
		case pos < float64(textLen)*middleBoundary:
			middle++
		default:
			end++
		}
	}

	marked := f.lib.Count(text.PatternSeamlessMarked, input)
	blended := f.lib.Count(text.PatternBlended, input)
	seamless := total - marked

	totalWords := text.WordCount(input)

	consistency := metrics.Saturate(float64(total), codeMeshingConsistencySaturation)
	alignment := metrics.Saturate(float64(seamless), codeMeshingAlignmentSaturation)

	style := "Marked"
	switch {
	case marked == 0:
		style = "Seamless"
	case float64(marked) < float64(total)/2:
		style = "Mixed"
	}

	return metrics.Record{
		Framework: IDCodeMeshing,
		Qualitative: metrics.Qualitative{
			Counts: map[string]int{
				"total_code_switches":  total,
				"beginning_switches":   beginning,
				"middle_switches":      middle,
				"end_switches":         end,
				"seamless_integration": seamless,
				"marked_switches":      marked,
				"grammatical_blending": blended,
			},
			Labels: map[string]string{
				"meshing_style": style,
			},
		},
		Quantitative: metrics.Quantitative{
			ConsistencyScore: metrics.Round3(consistency),
			AlignmentScore:   metrics.Round3(alignment),
			Ratios: map[string]float64{
				"code_mesh_ratio": metrics.Round2(metrics.PercentOf(total, totalWords)),
			},
			MarkerWords: markerWords(switches),
		},
	}
}
