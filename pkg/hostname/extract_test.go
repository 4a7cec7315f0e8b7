package hostname

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestAddedComparisons(t *testing.T) {
	t.Run("inserted segment", func(t *testing.T) {
		got := AddedComparisons([]DiffSegment{{Type: SegmentAdded, Text: "see https://spam.example.com/x"}})
		if len(got) != 1 {
			t.Fatalf("length mismatch: got %d, want 1", len(got))
		}
		if got[0].Old != nil {
			t.Errorf("Old mismatch: got %q, want nil", *got[0].Old)
		}
		if *got[0].New != "see https://spam.example.com/x" {
			t.Errorf("New mismatch: got %q", *got[0].New)
		}
	})

	t.Run("blank and context segments skipped", func(t *testing.T) {
		got := AddedComparisons([]DiffSegment{
			{Type: SegmentAdded, Text: "   "},
			{Type: SegmentContext, Text: "https://a.example.com"},
			{Type: SegmentChanged, Text: "https://a.example.com"},
			{Type: SegmentDeleted, Text: "https://b.example.com", HighlightRanges: []HighlightRange{{Start: 0, Length: 3, Type: RangeAddition}}},
		})
		if len(got) != 0 {
			t.Errorf("length mismatch: got %d, want 0", len(got))
		}
	})

	t.Run("changed segment with only additions", func(t *testing.T) {
		text := "abc https://new.example.org def"
		got := AddedComparisons([]DiffSegment{{
			Type:            SegmentChanged,
			Text:            text,
			HighlightRanges: []HighlightRange{{Start: 4, Length: 24, Type: RangeAddition}},
		}})
		if len(got) != 1 {
			t.Fatalf("length mismatch: got %d, want 1", len(got))
		}
		if *got[0].Old != "abc def" {
			t.Errorf("Old mismatch: got %q, want %q", *got[0].Old, "abc def")
		}
		if *got[0].New != text {
			t.Errorf("New mismatch: got %q, want %q", *got[0].New, text)
		}
	})

	t.Run("changed segment with mixed ranges", func(t *testing.T) {
		text := "x https://old.example.net https://new.example.org"
		got := AddedComparisons([]DiffSegment{{
			Type: SegmentMovedTarget,
			Text: text,
			HighlightRanges: []HighlightRange{
				{Start: 2, Length: 24, Type: RangeDeletion},
				{Start: 26, Length: 23, Type: RangeAddition},
			},
		}})
		if len(got) != 1 {
			t.Fatalf("length mismatch: got %d, want 1", len(got))
		}
		if *got[0].Old != "x https://old.example.net " {
			t.Errorf("Old mismatch: got %q", *got[0].Old)
		}
		if *got[0].New != "x https://new.example.org" {
			t.Errorf("New mismatch: got %q", *got[0].New)
		}
		if hosts := Extract(got); !reflect.DeepEqual(hosts, []string{"new.example.org"}) {
			t.Errorf("Extract mismatch: got %v", hosts)
		}
	})

	t.Run("deletions only", func(t *testing.T) {
		got := AddedComparisons([]DiffSegment{{
			Type:            SegmentChanged,
			Text:            "https://gone.example.org",
			HighlightRanges: []HighlightRange{{Start: 0, Length: 8, Type: RangeDeletion}},
		}})
		if len(got) != 0 {
			t.Errorf("length mismatch: got %d, want 0", len(got))
		}
	})
}

func TestMaskRanges(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ranges []HighlightRange
		want   string
	}{
		{name: "multi-byte", text: "aéb", ranges: []HighlightRange{{Start: 1, Length: 2}}, want: "ab"},
		{name: "clamped end", text: "abc", ranges: []HighlightRange{{Start: 1, Length: 10}}, want: "a"},
		{name: "clamped start", text: "abc", ranges: []HighlightRange{{Start: -2, Length: 3}}, want: "bc"},
		{name: "out of bounds", text: "abc", ranges: []HighlightRange{{Start: 7, Length: 2}}, want: "abc"},
		{name: "no ranges", text: "abc", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskRanges(tt.text, tt.ranges); got != tt.want {
				t.Errorf("MaskRanges mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no scheme", text: "no links here, just example.com", want: []string{}},
		{name: "case folded", text: "see https://Example.COM/path and http://example.com", want: []string{"example.com"}},
		{name: "no dot", text: "http://localhost/x", want: []string{}},
		{name: "short final label", text: "https://example.c/x", want: []string{}},
		{name: "underscore host", text: "https://my_site.example.com/", want: []string{}},
		{name: "port stripped", text: "https://a.example.com:8080/p", want: []string{"a.example.com"}},
		{name: "sorted", text: "https://b.org/ https://a.org/", want: []string{"a.org", "b.org"}},
		{name: "wiki markup", text: "[https://spam.example.net/buy cheap]", want: []string{"spam.example.net"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFromText(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractFromText mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	comparisons := []Comparison{
		{Old: strPtr("https://spam.com"), New: strPtr("https://spam.com https://new.com")},
		{New: strPtr("https://zeta.org")},
		{Old: strPtr("https://kept.org")},
	}
	want := []string{"new.com", "zeta.org"}
	if got := Extract(comparisons); !reflect.DeepEqual(got, want) {
		t.Errorf("Extract mismatch: got %v, want %v", got, want)
	}

	if got := Extract(nil); len(got) != 0 {
		t.Errorf("Extract(nil) mismatch: got %v, want empty", got)
	}
}
