package hostname

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSuffixSetContains(t *testing.T) {
	s := NewSuffixSet(".blogspot.com", ".wiki.example.org")
	tests := []struct {
		hostname string
		want     bool
	}{
		{hostname: "foo.blogspot.com", want: true},
		{hostname: "a.foo.blogspot.com", want: true},
		{hostname: "blogspot.com", want: false},
		{hostname: "x.wiki.example.org", want: true},
		{hostname: "wiki.example.org", want: false},
		{hostname: "spam.example.net", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			if got := s.Contains(tt.hostname); got != tt.want {
				t.Errorf("Contains mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadSuffixSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suffixes.csv")
	if err := os.WriteFile(path, []byte(".blogspot.com,blog\n.github.io\n\n.blogspot.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSuffixSet(path)
	if err != nil {
		t.Fatalf("LoadSuffixSet returned error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len mismatch: got %d, want 2", s.Len())
	}
	if !s.Contains("me.github.io") {
		t.Error("expected me.github.io to match")
	}
}
