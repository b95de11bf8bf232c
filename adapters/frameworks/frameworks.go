// Package frameworks implements the pattern-based metric extractors: one per
// theoretical framework, plus the sentiment and semantic-style analyzers.
// Extractors are pure functions of their input text — no shared mutable
// state, no errors: absence of signal is a valid zero-result.
package frameworks

import (
	"textlens/domain/metrics"
	"textlens/domain/text"
)

// Framework IDs used throughout results and reports.
const (
	IDSRTOL               = "srtol"
	IDMultiliteracies     = "multiliteracies"
	IDMultimodality       = "multimodality"
	IDRhetoricalListening = "rhetorical_listening"
	IDCodeMeshing         = "code_meshing"
	IDBigData             = "big_data"
	IDComposingWithAI     = "composing_with_ai"
)

// Framework scores a text unit against one theoretical lens.
type Framework interface {
	ID() string
	Name() string
	Description() string
	Analyze(input string) metrics.Record
}

// Engine holds the fixed framework set in analysis order.
type Engine struct {
	frameworks []Framework
}

// NewEngine builds the seven-framework engine over a shared pattern library.
func NewEngine(lib *text.Library) *Engine {
	return &Engine{
		frameworks: []Framework{
			NewSRTOL(lib),
			NewMultiliteracies(lib),
			NewMultimodality(lib),
			NewRhetoricalListening(lib),
			NewCodeMeshing(lib),
			NewBigData(lib),
			NewComposingWithAI(lib),
		},
	}
}

// Frameworks returns the frameworks in analysis order.
func (e *Engine) Frameworks() []Framework {
	return e.frameworks
}

// AnalyzeAll scores the text against every framework.
func (e *Engine) AnalyzeAll(input string) map[string]metrics.Record {
	records := make(map[string]metrics.Record, len(e.frameworks))
	for _, f := range e.frameworks {
		records[f.ID()] = f.Analyze(input)
	}
	return records
}

func markerWords(switches []text.Switch) []string {
	words := make([]string, len(switches))
	for i, s := range switches {
		words[i] = s.Text
	}
	return words
}
