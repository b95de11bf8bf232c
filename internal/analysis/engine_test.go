package analysis

import (
	"context"
	"reflect"
	"testing"

	"textlens/domain/corpus"
)

func testSegments() []corpus.Segment {
	return []corpus.Segment{
		{
			ID:         1,
			PromptType: "both",
			Prompt:     "Describe the image.",
			Responses: map[string]corpus.Response{
				"model_a": {
					FullText:    "Mira, the gray ocean stretches out. She leans in and touches the sand aquí.",
					Context:     "Mira, the gray ocean stretches out.",
					Abstraction: "The horizon suggests distance and loss.",
					Concept:     "She leans in and touches the sand aquí.",
				},
				"model_b": {
					FullText: "A calm beach with soft light and a quiet figure near the water.",
					Context:  "A calm beach with soft light.",
					Concept:  "A quiet figure near the water.",
				},
				"model_empty": {},
			},
		},
		{
			ID:         2,
			PromptType: "image_only",
			Prompt:     "What do you see?",
			Responses: map[string]corpus.Response{
				"model_a": {
					FullText: "Pattern and texture suggest a general theme of isolation, pero with hope.",
					Context:  "Pattern and texture suggest a general theme.",
				},
			},
		},
	}
}

func TestEngine_Run_OmitsEmptyModels(t *testing.T) {
	engine := NewEngine(Options{Workers: 2})

	result, err := engine.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, ok := result.Models["model_empty"]; ok {
		t.Error("model with only empty responses should be omitted")
	}
	if len(result.Models) != 2 {
		t.Fatalf("got %d models, want 2", len(result.Models))
	}
	if result.RunID.String() == "" {
		t.Error("run ID should be set")
	}
}

func TestEngine_Run_PerModelRollups(t *testing.T) {
	engine := NewEngine(Options{Workers: 1})

	result, err := engine.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	a := result.Models["model_a"]
	if a.OverallStats.TotalResponses != 2 {
		t.Errorf("model_a responses = %d, want 2", a.OverallStats.TotalResponses)
	}
	if a.OverallStats.TotalWords == 0 {
		t.Error("model_a total words should be nonzero")
	}
	if len(a.Theoretical) != 7 {
		t.Errorf("model_a has %d framework averages, want 7", len(a.Theoretical))
	}
	for id, avg := range a.Theoretical {
		if avg.Samples == 0 {
			t.Errorf("%s has zero samples", id)
		}
		if avg.AvgConsistency < 0 || avg.AvgConsistency > 1 {
			t.Errorf("%s avg consistency = %v out of [0,1]", id, avg.AvgConsistency)
		}
	}

	b := result.Models["model_b"]
	if b.OverallStats.TotalResponses != 1 {
		t.Errorf("model_b responses = %d, want 1", b.OverallStats.TotalResponses)
	}
	// model_b has no abstraction text, so that parameter is absent.
	if _, ok := b.Responses[0].Parameters[corpus.ParamAbstraction]; ok {
		t.Error("empty abstraction parameter should be absent")
	}
	if _, ok := b.Responses[0].Parameters[corpus.ParamContext]; !ok {
		t.Error("context parameter should be present")
	}
}

func TestEngine_Run_ParameterAnalysisComplete(t *testing.T) {
	engine := NewEngine(Options{Workers: 1, ResponseThemes: 5})

	result, err := engine.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	param := result.Models["model_a"].Responses[0].Parameters[corpus.ParamContext]
	if len(param.Theoretical) != 7 {
		t.Fatalf("got %d framework analyses, want 7", len(param.Theoretical))
	}
	for id, fa := range param.Theoretical {
		if fa.Narrative == nil {
			t.Errorf("%s missing narrative", id)
		}
	}
	if len(param.Themes) == 0 {
		t.Error("parameter themes should be extracted")
	}
	if len(param.Themes) > 5 {
		t.Errorf("themes exceed configured limit: %d", len(param.Themes))
	}
}

func TestEngine_Run_ComparativeBlock(t *testing.T) {
	engine := NewEngine(Options{Workers: 3})

	result, err := engine.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	comp := result.Comparative
	for _, key := range []string{"context_themes", "concept_themes", "unified_themes"} {
		if len(comp.Themes[key]) == 0 {
			t.Errorf("comparative themes %s is empty", key)
		}
	}
	if len(comp.Frameworks) != 7 {
		t.Errorf("got %d comparative narratives, want 7", len(comp.Frameworks))
	}
	if cn := comp.Frameworks["code_meshing"]; cn.Description == "" {
		t.Error("code_meshing comparative description is empty")
	}
}

func TestEngine_Run_UnifiedThemesPoolParameterTexts(t *testing.T) {
	engine := NewEngine(Options{Workers: 1})

	// "lighthouse" appears only in the full response; the parameter splits
	// carry "ocean". The unified pool draws from parameter texts alone.
	segments := []corpus.Segment{
		{
			ID: 1,
			Responses: map[string]corpus.Response{
				"model_a": {
					FullText: "Section header: lighthouse lighthouse lighthouse. The ocean below.",
					Context:  "The ocean below.",
					Concept:  "The ocean again.",
				},
			},
		},
	}

	result, err := engine.Run(context.Background(), segments)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	unified := result.Comparative.Themes["unified_themes"]
	if len(unified) == 0 {
		t.Fatal("unified themes should be populated from parameter texts")
	}
	sawOcean := false
	for _, theme := range unified {
		if theme.Word == "lighthouse" {
			t.Errorf("unified themes contain %q (count %d); pool must not draw from full responses",
				theme.Word, theme.Count)
		}
		if theme.Word == "ocean" {
			sawOcean = true
			if theme.Count != 2 {
				t.Errorf("ocean count = %d, want 2 (once per parameter text)", theme.Count)
			}
		}
	}
	if !sawOcean {
		t.Error("unified themes missing parameter-text word \"ocean\"")
	}
}

func TestEngine_Run_DeterministicAcrossWorkerCounts(t *testing.T) {
	serial := NewEngine(Options{Workers: 1})
	parallel := NewEngine(Options{Workers: 8})

	first, err := serial.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	second, err := parallel.Run(context.Background(), testSegments())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Everything except run identity must be identical regardless of
	// scheduling.
	if !reflect.DeepEqual(first.Models, second.Models) {
		t.Error("per-model results differ across worker counts")
	}
	if !reflect.DeepEqual(first.Comparative, second.Comparative) {
		t.Error("comparative block differs across worker counts")
	}
}

func TestEngine_Run_CancelledContext(t *testing.T) {
	engine := NewEngine(Options{Workers: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Run(ctx, testSegments()); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
