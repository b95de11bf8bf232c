package metrics

import "testing"

func TestGrade_FirstMatchWins(t *testing.T) {
	bands := []Band{
		{Above: 5, Label: "High"},
		{Above: 2, Label: "Medium"},
	}

	cases := []struct {
		value float64
		want  string
	}{
		{6, "High"},
		{5, "Medium"}, // bounds are strict
		{3, "Medium"},
		{2, "Low"},
		{0, "Low"},
	}
	for _, tc := range cases {
		if got := Grade(tc.value, bands, "Low"); got != tc.want {
			t.Errorf("Grade(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestSaturate_Clamps(t *testing.T) {
	cases := []struct {
		raw, saturation, want float64
	}{
		{5, 10, 0.5},
		{10, 10, 1},
		{25, 10, 1},  // clamped above
		{-3, 10, 0},  // clamped below
		{0, 10, 0},
	}
	for _, tc := range cases {
		if got := Saturate(tc.raw, tc.saturation); got != tc.want {
			t.Errorf("Saturate(%v, %v) = %v, want %v", tc.raw, tc.saturation, got, tc.want)
		}
	}
}

func TestPercentOf_FloorsDenominator(t *testing.T) {
	if got := PercentOf(3, 0); got != 300 {
		t.Errorf("PercentOf(3, 0) = %v, want 300", got)
	}
	if got := PercentOf(2, 100); got != 2 {
		t.Errorf("PercentOf(2, 100) = %v, want 2", got)
	}
	if got := PercentOf(0, 0); got != 0 {
		t.Errorf("PercentOf(0, 0) = %v, want 0", got)
	}
}

func TestRatioOf_FloorsDenominator(t *testing.T) {
	if got := RatioOf(4, 0); got != 4 {
		t.Errorf("RatioOf(4, 0) = %v, want 4", got)
	}
	if got := RatioOf(1, 4); got != 0.25 {
		t.Errorf("RatioOf(1, 4) = %v, want 0.25", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round3(0.12345); got != 0.123 {
		t.Errorf("Round3 = %v, want 0.123", got)
	}
	if got := Round2(0.567); got != 0.57 {
		t.Errorf("Round2 = %v, want 0.57", got)
	}
}
