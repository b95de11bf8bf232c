package analysis

import (
	"reflect"
	"testing"

	"textlens/domain/lexicon"
	"textlens/domain/metrics"
	"textlens/domain/text"
)

func newExtractor() *ThemeExtractor {
	return NewThemeExtractor(text.NewNormalizer(lexicon.New()))
}

func TestThemes_TiesKeepFirstEncounteredOrder(t *testing.T) {
	e := newExtractor()

	got := e.TopPooled([]string{"cat dog cat", "dog bird"}, 2)
	want := []metrics.ThemeCount{{Word: "cat", Count: 2}, {Word: "dog", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopPooled() = %v, want %v", got, want)
	}
}

func TestThemes_TopTruncatesAndSorts(t *testing.T) {
	e := newExtractor()

	got := e.Top("ocean ocean ocean sand sand bird", 2)
	want := []metrics.ThemeCount{{Word: "ocean", Count: 3}, {Word: "sand", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Top() = %v, want %v", got, want)
	}
}

func TestThemes_StopwordsFilteredCulturalKept(t *testing.T) {
	e := newExtractor()

	// "qué" is a Spanish stop-word but culturally preserved.
	got := e.Top("the qué and the ocean", 5)
	want := []metrics.ThemeCount{{Word: "qué", Count: 1}, {Word: "ocean", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Top() = %v, want %v", got, want)
	}
}

func TestThemes_EmptyInput(t *testing.T) {
	e := newExtractor()
	if got := e.Top("", 10); len(got) != 0 {
		t.Fatalf("Top(\"\") = %v, want empty", got)
	}
}
