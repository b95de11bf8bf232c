package text

import "testing"

func TestDetectCodeSwitching_ByteOffsets(t *testing.T) {
	input := "Hello, ¿qué pasa? end"
	switches := DetectCodeSwitching(input)

	if len(switches) == 0 {
		t.Fatal("expected switches, got none")
	}
	for _, s := range switches {
		if input[s.Start:s.End] != s.Text {
			t.Errorf("offsets do not reproduce text: input[%d:%d] = %q, Text = %q",
				s.Start, s.End, input[s.Start:s.End], s.Text)
		}
	}
}

func TestDetectCodeSwitching_PatternMajorOrderAndOverlap(t *testing.T) {
	input := "Hello, ¿qué pasa? end"
	switches := DetectCodeSwitching(input)

	// "qué" matches the word list; the full "¿qué pasa?" span matches the
	// inverted-question pattern. The overlap is retained, word-list matches
	// first.
	if len(switches) != 2 {
		t.Fatalf("got %d switches, want 2: %+v", len(switches), switches)
	}
	if switches[0].Text != "qué" {
		t.Errorf("first switch = %q, want %q", switches[0].Text, "qué")
	}
	if switches[1].Text != "¿qué pasa?" {
		t.Errorf("second switch = %q, want %q", switches[1].Text, "¿qué pasa?")
	}
}

func TestDetectCodeSwitching_NoSignal(t *testing.T) {
	if got := DetectCodeSwitching("A gray beach under a flat sky."); len(got) != 0 {
		t.Fatalf("expected no switches, got %+v", got)
	}
}

func TestDetectCodeSwitching_DuplicatesRetained(t *testing.T) {
	switches := DetectCodeSwitching("mira the water, mira the sky")
	if len(switches) != 2 {
		t.Fatalf("got %d switches, want 2 (duplicates retained)", len(switches))
	}
}
