package text

import (
	"reflect"
	"testing"
)

func TestWordList_AccentedBoundaries(t *testing.T) {
	lib := NewLibrary()

	// Accented words must match at rune boundaries.
	if got := lib.Count(PatternCodeSwitchWords, "qué pasa aquí"); got != 2 {
		t.Errorf("count(%q) = %d, want 2", "qué pasa aquí", got)
	}

	// No match when the word runs into adjacent word runes.
	if got := lib.Count(PatternCodeSwitchWords, "quéx aquícito"); got != 0 {
		t.Errorf("count inside longer words = %d, want 0", got)
	}

	// "eso" inside "esoteric" is not a word match.
	if got := lib.Count(PatternCodeSwitchWords, "an esoteric reading"); got != 0 {
		t.Errorf("count(%q) = %d, want 0", "an esoteric reading", got)
	}
}

func TestWordList_CaseInsensitiveSurfacePreserved(t *testing.T) {
	lib := NewLibrary()

	got := lib.FindAll(PatternCodeSwitchWords, "Mira, she said. mira!")
	want := []string{"Mira", "mira"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}

func TestRawPatterns(t *testing.T) {
	lib := NewLibrary()

	if got := lib.Count(PatternSpanishQuestion, "¿qué pasa? and ¿ves?"); got != 2 {
		t.Errorf("spanish question count = %d, want 2", got)
	}

	// question_markers counts inverted spans and bare marks; question_marks
	// counts only the marks.
	input := "¿qué pasa? Is it?"
	if got := lib.Count(PatternQuestion, input); got != 2 {
		t.Errorf("question markers count = %d, want 2", got)
	}
	if got := lib.Count(PatternQuestionMark, input); got != 2 {
		t.Errorf("question marks count = %d, want 2", got)
	}
}

func TestSpec_FindAllIndexOffsets(t *testing.T) {
	lib := NewLibrary()
	input := "Hello, ¿qué pasa? end"

	for _, m := range lib.Spec(PatternCodeSwitchWords).FindAllIndex(input) {
		if m[0] < 0 || m[1] > len(input) || m[0] >= m[1] {
			t.Fatalf("invalid match span %v for input length %d", m, len(input))
		}
	}
}

func TestLibrary_UnknownPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown pattern name")
		}
	}()
	NewLibrary().Spec("no_such_pattern")
}
