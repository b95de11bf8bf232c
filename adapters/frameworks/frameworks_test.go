package frameworks

import (
	"reflect"
	"testing"

	"textlens/domain/text"
)

const sampleResponse = `Mira, the gray ocean stretches to the horizon. ` +
	`She leans in and touches the sand. ¿Ves el mar? ` +
	`The composition suggests loneliness, pero there is hope aquí.`

func TestEngine_AnalyzeAll_CoversEveryFramework(t *testing.T) {
	engine := NewEngine(text.NewLibrary())

	records := engine.AnalyzeAll(sampleResponse)
	wantIDs := []string{
		IDSRTOL, IDMultiliteracies, IDMultimodality, IDRhetoricalListening,
		IDCodeMeshing, IDBigData, IDComposingWithAI,
	}
	if len(records) != len(wantIDs) {
		t.Fatalf("got %d records, want %d", len(records), len(wantIDs))
	}
	for _, id := range wantIDs {
		rec, ok := records[id]
		if !ok {
			t.Errorf("missing record for %s", id)
			continue
		}
		if rec.Framework != id {
			t.Errorf("record framework = %q, want %q", rec.Framework, id)
		}
	}
}

func TestEngine_AnalyzeAll_Deterministic(t *testing.T) {
	engine := NewEngine(text.NewLibrary())

	first := engine.AnalyzeAll(sampleResponse)
	second := engine.AnalyzeAll(sampleResponse)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated analysis of identical input produced different records")
	}
}

func TestEngine_AnalyzeAll_ScoresWithinUnitInterval(t *testing.T) {
	engine := NewEngine(text.NewLibrary())

	for _, input := range []string{"", sampleResponse, "mija mija mija mija mija mija mija mija mija mija mija mija"} {
		for id, rec := range engine.AnalyzeAll(input) {
			q := rec.Quantitative
			if q.ConsistencyScore < 0 || q.ConsistencyScore > 1 {
				t.Errorf("%s consistency = %v out of [0,1] for %q", id, q.ConsistencyScore, input)
			}
			if q.AlignmentScore < 0 || q.AlignmentScore > 1 {
				t.Errorf("%s alignment = %v out of [0,1] for %q", id, q.AlignmentScore, input)
			}
		}
	}
}

func TestEngine_AnalyzeAll_EmptyInputIsZeroSignal(t *testing.T) {
	engine := NewEngine(text.NewLibrary())

	for id, rec := range engine.AnalyzeAll("") {
		for key, n := range rec.Qualitative.Counts {
			if n != 0 {
				t.Errorf("%s count %s = %d on empty input, want 0", id, key, n)
			}
		}
		if rec.Quantitative.ConsistencyScore != 0 {
			t.Errorf("%s consistency = %v on empty input, want 0", id, rec.Quantitative.ConsistencyScore)
		}
		if rec.Quantitative.AlignmentScore != 0 {
			t.Errorf("%s alignment = %v on empty input, want 0", id, rec.Quantitative.AlignmentScore)
		}
		if len(rec.Qualitative.Labels) == 0 {
			t.Errorf("%s has no labels on empty input", id)
		}
	}
}

func TestSRTOL_Counts(t *testing.T) {
	f := NewSRTOL(text.NewLibrary())

	rec := f.Analyze(sampleResponse)
	counts := rec.Qualitative.Counts

	// Word-list switches: Mira, Ves, pero, aquí; plus the ¿...? span.
	if got := counts["code_switching_instances"]; got != 5 {
		t.Errorf("code_switching_instances = %d, want 5", got)
	}
	// leans, touches.
	if got := counts["gesture_descriptions"]; got != 2 {
		t.Errorf("gesture_descriptions = %d, want 2", got)
	}
	// ves, aquí.
	if got := counts["vernacular_markers"]; got != 2 {
		t.Errorf("vernacular_markers = %d, want 2", got)
	}
}

func TestSRTOL_MarkerWordsKeepCasingAndDuplicates(t *testing.T) {
	f := NewSRTOL(text.NewLibrary())

	rec := f.Analyze("Mira the sky, mira the sea")
	want := []string{"Mira", "mira"}
	if !reflect.DeepEqual(rec.Quantitative.MarkerWords, want) {
		t.Fatalf("MarkerWords = %v, want %v", rec.Quantitative.MarkerWords, want)
	}
}

func TestSRTOL_Labels(t *testing.T) {
	f := NewSRTOL(text.NewLibrary())

	rec := f.Analyze("A gray beach under a flat sky.")
	if got := rec.Qualitative.Labels["cultural_authenticity"]; got != "Low" {
		t.Errorf("cultural_authenticity = %q, want Low", got)
	}
	if got := rec.Qualitative.Labels["linguistic_ownership"]; got != "Weak" {
		t.Errorf("linguistic_ownership = %q, want Weak", got)
	}

	// Six gestures push cultural authenticity over the High bound.
	rec = f.Analyze("leans leans leans touches touches touches")
	if got := rec.Qualitative.Labels["cultural_authenticity"]; got != "High" {
		t.Errorf("cultural_authenticity = %q, want High", got)
	}
}

func TestCodeMeshing_SeamlessVersusMarked(t *testing.T) {
	f := NewCodeMeshing(text.NewLibrary())

	rec := f.Analyze("mija aquí verdad")
	counts := rec.Qualitative.Counts
	if counts["marked_switches"] != 0 {
		t.Errorf("marked_switches = %d, want 0", counts["marked_switches"])
	}
	if counts["seamless_integration"] != counts["total_code_switches"] {
		t.Errorf("seamless (%d) should equal total (%d) with no marked switches",
			counts["seamless_integration"], counts["total_code_switches"])
	}
	if got := rec.Qualitative.Labels["meshing_style"]; got != "Seamless" {
		t.Errorf("meshing_style = %q, want Seamless", got)
	}
}
