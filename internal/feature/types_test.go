package feature

import "testing"

func TestVector(t *testing.T) {
	f := HostnameFeature{
		Hostname:                 "casino1.example.bet",
		OpenPageRank:             -1,
		AkaRank:                  -1,
		TrancoRank:               42,
		TrancoRankAvailable:      true,
		MajesticMillionRank:      -1,
		CloudflareRadarAvailable: true,
		HasSpecialWord:           true,
		GamblingTLD:              true,
		HostnameLength:           19,
		DotCount:                 2,
		DigitCount:               1,
		IsTopPrivateDomain:       true,
	}

	want := []float32{-1, 0, -1, 0, 42, 1, -1, 0, 1, 1, 0, 0, 1, 0, 19, 2, 1, 0, 0, 1}
	got := f.Vector()
	if len(got) != VectorSize {
		t.Fatalf("length mismatch: got %d, want %d", len(got), VectorSize)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRank(t *testing.T) {
	m := map[string]int{"example.com": 3}
	if r, ok := Rank(m, "example.com"); r != 3 || !ok {
		t.Errorf("Rank mismatch: got (%d, %v), want (3, true)", r, ok)
	}
	if r, ok := Rank(m, "missing.com"); r != -1 || ok {
		t.Errorf("Rank mismatch: got (%d, %v), want (-1, false)", r, ok)
	}
}
