package text

import (
	"reflect"
	"testing"

	"textlens/domain/lexicon"
)

func TestTokenize_PreservesCulturalTerms(t *testing.T) {
	norm := NewNormalizer(lexicon.New())

	got := norm.Tokenize("mija the cat", true)
	want := []string{"mija", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_PreservationOverridesStopwords(t *testing.T) {
	norm := NewNormalizer(lexicon.New())

	// "qué" is a Spanish stop-word but sits in the cultural-preservation set.
	withPreserve := norm.Tokenize("qué pasa", true)
	if !reflect.DeepEqual(withPreserve, []string{"qué", "pasa"}) {
		t.Errorf("preserved tokenize = %v, want [qué pasa]", withPreserve)
	}

	withoutPreserve := norm.Tokenize("qué pasa", false)
	if !reflect.DeepEqual(withoutPreserve, []string{"pasa"}) {
		t.Errorf("unpreserved tokenize = %v, want [pasa]", withoutPreserve)
	}
}

func TestTokenize_StripsPunctuationAndLowercases(t *testing.T) {
	norm := NewNormalizer(lexicon.New())

	got := norm.Tokenize("Ocean! Waves, horizon...", true)
	want := []string{"ocean", "waves", "horizon"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	norm := NewNormalizer(lexicon.New())
	if got := norm.Tokenize("", true); len(got) != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"the gray ocean stretches", 4},
		{"line\nbreaks   count\ttoo", 4},
	}
	for _, tc := range cases {
		if got := WordCount(tc.input); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First sentence. Second one! A third? ")
	want := []string{"First sentence", "Second one", "A third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences() = %v, want %v", got, want)
	}

	if got := SplitSentences(""); len(got) != 0 {
		t.Fatalf("SplitSentences(\"\") = %v, want empty", got)
	}
}
