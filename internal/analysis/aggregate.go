package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"textlens/adapters/frameworks"
	"textlens/domain/corpus"
	"textlens/domain/metrics"
	"textlens/domain/text"
)

// aggregate fills in the per-model rollups and the cross-model comparative
// block. Every fold walks models in sorted name order and responses in
// work-list order, so the output is stable across runs.
func (e *Engine) aggregate(result *corpus.AnalysisResult) {
	for _, report := range result.Models {
		e.summarizeModel(report)
	}
	result.Comparative = e.comparative(result.Models)
}

func (e *Engine) summarizeModel(report *corpus.ModelReport) {
	totalWords := 0
	polarities := make([]float64, 0, len(report.Responses))
	subjectivities := make([]float64, 0, len(report.Responses))
	for _, resp := range report.Responses {
		totalWords += text.WordCount(resp.FullResponse)
		polarities = append(polarities, resp.OverallSentiment.Polarity)
		subjectivities = append(subjectivities, resp.OverallSentiment.Subjectivity)
	}

	avgPolarity := meanOf(polarities)
	report.OverallStats = metrics.OverallStats{
		TotalResponses: len(report.Responses),
		TotalWords:     totalWords,
	}
	report.Sentiment = metrics.SentimentSummary{
		AveragePolarity:     metrics.Round3(avgPolarity),
		AverageSubjectivity: metrics.Round3(meanOf(subjectivities)),
		OverallEmotion:      frameworks.EmotionLabel(avgPolarity),
	}

	report.Theoretical = make(map[string]metrics.FrameworkAverages, len(e.frameworks.Frameworks()))
	for _, f := range e.frameworks.Frameworks() {
		consistency, alignment := frameworkSeries(report.Responses, f.ID())
		if len(consistency) == 0 {
			continue
		}
		report.Theoretical[f.ID()] = metrics.FrameworkAverages{
			AvgConsistency:    metrics.Round3(meanOf(consistency)),
			AvgAlignment:      metrics.Round3(meanOf(alignment)),
			ConsistencyStdDev: metrics.Round3(stdDevOf(consistency)),
			Samples:           len(consistency),
		}
	}
}

// frameworkSeries collects the framework's score pairs across every analyzed
// parameter of every response, in traversal order.
func frameworkSeries(responses []corpus.ResponseAnalysis, frameworkID string) (consistency, alignment []float64) {
	for _, resp := range responses {
		for _, param := range corpus.ParameterNames {
			pa, ok := resp.Parameters[param]
			if !ok {
				continue
			}
			fa, ok := pa.Theoretical[frameworkID]
			if !ok {
				continue
			}
			consistency = append(consistency, fa.Metrics.Quantitative.ConsistencyScore)
			alignment = append(alignment, fa.Metrics.Quantitative.AlignmentScore)
		}
	}
	return consistency, alignment
}

func (e *Engine) comparative(models map[string]*corpus.ModelReport) corpus.Comparative {
	names := sortedModelNames(models)

	comp := corpus.Comparative{
		Themes:         make(map[string][]metrics.ThemeCount, len(corpus.ParameterNames)+1),
		Frameworks:     make(map[string]metrics.ComparativeNarrative, len(e.frameworks.Frameworks())),
		ScoreCoherence: make(map[string]float64),
	}

	// Pooled themes: one list per parameter, plus the unified pool built from
	// the same parameter texts. Full responses never enter theme extraction;
	// they carry section prose the parameter splits exclude.
	paramTexts := make(map[string][]string, len(corpus.ParameterNames))
	var unified []string
	for _, name := range names {
		for _, resp := range models[name].Responses {
			for _, param := range corpus.ParameterNames {
				pa, ok := resp.Parameters[param]
				if !ok {
					continue
				}
				paramTexts[param] = append(paramTexts[param], pa.Text)
				unified = append(unified, pa.Text)
			}
		}
	}
	for _, param := range corpus.ParameterNames {
		comp.Themes[param+"_themes"] = e.themes.TopPooled(paramTexts[param], e.opts.ComparativeThemes)
	}
	comp.Themes[corpus.ParamUnified+"_themes"] = e.themes.TopPooled(unified, e.opts.ComparativeThemes)

	for _, f := range e.frameworks.Frameworks() {
		perModel := make(map[string]metrics.Record, len(names))
		for _, name := range names {
			perModel[name] = summedRecord(models[name].Responses, f.ID())
		}
		comp.Frameworks[f.ID()] = e.narrative.Comparative(f.ID(), perModel)

		if r, ok := scoreCoherence(models, names, f.ID()); ok {
			comp.ScoreCoherence[f.ID()] = metrics.Round3(r)
		}
	}

	return comp
}

// summedRecord folds a model's per-parameter counts for one framework into a
// single record the comparative templates can quote totals from.
func summedRecord(responses []corpus.ResponseAnalysis, frameworkID string) metrics.Record {
	summed := metrics.Record{
		Framework:   frameworkID,
		Qualitative: metrics.Qualitative{Counts: make(map[string]int)},
	}
	for _, resp := range responses {
		for _, param := range corpus.ParameterNames {
			pa, ok := resp.Parameters[param]
			if !ok {
				continue
			}
			fa, ok := pa.Theoretical[frameworkID]
			if !ok {
				continue
			}
			for key, n := range fa.Metrics.Qualitative.Counts {
				summed.Qualitative.Counts[key] += n
			}
		}
	}
	return summed
}

// scoreCoherence is the Pearson correlation between a framework's consistency
// and alignment scores across the whole corpus. Degenerate series (fewer than
// two points, or zero variance) yield no entry.
func scoreCoherence(models map[string]*corpus.ModelReport, names []string, frameworkID string) (float64, bool) {
	var consistency, alignment []float64
	for _, name := range names {
		c, a := frameworkSeries(models[name].Responses, frameworkID)
		consistency = append(consistency, c...)
		alignment = append(alignment, a...)
	}
	if len(consistency) < 2 {
		return 0, false
	}
	r := stat.Correlation(consistency, alignment, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func sortedModelNames(models map[string]*corpus.ModelReport) []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func meanOf(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	m, err := stats.Mean(series)
	if err != nil {
		return 0
	}
	return m
}

func stdDevOf(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sd, err := stats.StandardDeviation(series)
	if err != nil {
		return 0
	}
	return sd
}
