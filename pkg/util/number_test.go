package util

import "testing"

func TestRoundHalfUp6(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.9876545, want: 0.987655},
		{in: 0.9876544, want: 0.987654},
		{in: 0.0000005, want: 0.000001},
		{in: 0.5, want: 0.5},
		{in: 0.9999996, want: 1},
		{in: -0.1234565, want: -0.123457},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		if got := RoundHalfUp6(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp6(%v) mismatch: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]int64{3, 1, 3, 2, 1})
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d mismatch: got %d, want %d", i, got[i], want[i])
		}
	}
}
