package table

import (
	"strings"
	"testing"
)

func TestFirstColumn(t *testing.T) {
	values, err := FirstColumn(strings.NewReader("google.com,1\n\nfacebook.com\ngoogle.com,3\n"))
	if err != nil {
		t.Fatalf("FirstColumn returned error: %v", err)
	}
	want := []string{"google.com", "facebook.com", "google.com"}
	if len(values) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("value %d mismatch: got %s, want %s", i, values[i], want[i])
		}
	}
}

func TestRanks(t *testing.T) {
	ranks := Ranks([]string{"a.com", "b.com", "a.com", "c.com"})
	tests := map[string]int{"a.com": 1, "b.com": 2, "c.com": 4}
	for k, want := range tests {
		if got := ranks[k]; got != want {
			t.Errorf("rank of %s mismatch: got %d, want %d", k, got, want)
		}
	}
	if len(ranks) != 3 {
		t.Errorf("size mismatch: got %d, want 3", len(ranks))
	}
}

func TestReadFirstColumnMissingFile(t *testing.T) {
	if _, err := ReadFirstColumn("/nonexistent/citron.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
