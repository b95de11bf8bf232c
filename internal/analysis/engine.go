// Package analysis orchestrates the full corpus run: fan out the framework
// extractors over every (segment, model) response, then fold the per-response
// records into per-model reports and the cross-model comparative block.
package analysis

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"textlens/adapters/frameworks"
	"textlens/adapters/narrative"
	"textlens/domain/core"
	"textlens/domain/corpus"
	"textlens/domain/lexicon"
	"textlens/domain/text"
)

// Options tunes one engine run.
type Options struct {
	Workers           int
	ResponseThemes    int
	ComparativeThemes int
}

// Engine wires the extractors, narrative generator, and aggregators into one
// deterministic pipeline. All collaborators are stateless, so a single Engine
// can serve concurrent runs.
type Engine struct {
	frameworks *frameworks.Engine
	sentiment  *frameworks.SentimentAnalyzer
	style      *frameworks.StyleAnalyzer
	themes     *ThemeExtractor
	narrative  *narrative.Generator
	opts       Options
}

// NewEngine builds the engine over fresh lexicon and pattern tables.
func NewEngine(opts Options) *Engine {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.ResponseThemes < 1 {
		opts.ResponseThemes = 10
	}
	if opts.ComparativeThemes < 1 {
		opts.ComparativeThemes = 30
	}

	lex := lexicon.New()
	lib := text.NewLibrary()
	return &Engine{
		frameworks: frameworks.NewEngine(lib),
		sentiment:  frameworks.NewSentimentAnalyzer(lex),
		style:      frameworks.NewStyleAnalyzer(lib),
		themes:     NewThemeExtractor(text.NewNormalizer(lex)),
		narrative:  narrative.NewGenerator(),
		opts:       opts,
	}
}

type job struct {
	segment corpus.Segment
	model   string
}

// Run analyzes every non-empty response in the corpus and assembles the
// complete result. Responses with an empty full text are skipped; a model
// whose responses are all empty is omitted from the output entirely.
func (e *Engine) Run(ctx context.Context, segments []corpus.Segment) (*corpus.AnalysisResult, error) {
	jobs := e.collectJobs(segments)
	log.Printf("[Engine] analyzing %d responses across %d segments with %d workers",
		len(jobs), len(segments), e.opts.Workers)

	analyses := make([]*corpus.ResponseAnalysis, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			analyses[i] = e.analyzeResponse(j.segment, j.model)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &corpus.AnalysisResult{
		RunID:       core.NewRunID(),
		GeneratedAt: core.Now(),
		Models:      groupByModel(analyses),
	}
	e.aggregate(result)
	log.Printf("[Engine] run %s complete: %d models", result.RunID, len(result.Models))
	return result, nil
}

// collectJobs flattens the corpus into an ordered work list: segments in
// input order, model names sorted within each segment. The fixed order keeps
// output identical regardless of scheduling.
func (e *Engine) collectJobs(segments []corpus.Segment) []job {
	var jobs []job
	for _, seg := range segments {
		models := make([]string, 0, len(seg.Responses))
		for name, resp := range seg.Responses {
			if resp.FullText == "" {
				continue
			}
			models = append(models, name)
		}
		sort.Strings(models)
		for _, name := range models {
			jobs = append(jobs, job{segment: seg, model: name})
		}
	}
	return jobs
}

func (e *Engine) analyzeResponse(seg corpus.Segment, model string) *corpus.ResponseAnalysis {
	resp := seg.Responses[model]

	params := make(map[string]corpus.ParameterAnalysis, len(corpus.ParameterNames))
	for _, name := range corpus.ParameterNames {
		input := resp.Parameter(name)
		if input == "" {
			continue
		}
		params[name] = e.analyzeParameter(input, name)
	}

	return &corpus.ResponseAnalysis{
		SegmentID:        seg.ID,
		PromptType:       seg.PromptType,
		Prompt:           seg.Prompt,
		Model:            model,
		FullResponse:     resp.FullText,
		OverallSentiment: e.sentiment.Analyze(resp.FullText),
		Parameters:       params,
	}
}

func (e *Engine) analyzeParameter(input, name string) corpus.ParameterAnalysis {
	records := e.frameworks.AnalyzeAll(input)

	theoretical := make(map[string]corpus.FrameworkAnalysis, len(records))
	for id, rec := range records {
		fa := corpus.FrameworkAnalysis{Metrics: rec}
		if n, ok := e.narrative.Generate(id, rec, input); ok {
			fa.Narrative = &n
		}
		theoretical[id] = fa
	}

	return corpus.ParameterAnalysis{
		Text:          input,
		Themes:        e.themes.Top(input, e.opts.ResponseThemes),
		Sentiment:     e.sentiment.Analyze(input),
		SemanticStyle: e.style.Analyze(input, name),
		Theoretical:   theoretical,
	}
}

// groupByModel folds the flat analysis list into per-model reports,
// preserving the work-list order within each model.
func groupByModel(analyses []*corpus.ResponseAnalysis) map[string]*corpus.ModelReport {
	models := make(map[string]*corpus.ModelReport)
	for _, a := range analyses {
		if a == nil {
			continue
		}
		report, ok := models[a.Model]
		if !ok {
			report = &corpus.ModelReport{}
			models[a.Model] = report
		}
		report.Responses = append(report.Responses, *a)
	}
	return models
}
