package hostname

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var linkPattern = regexp.MustCompile(`\bhttps?://[-a-zA-Z0-9+&@#/%?=~_!:,.;]*[-a-zA-Z0-9+&@#/%=~_]\b`)

// AddedComparisons turns diff segments into comparisons that carry added text.
//
// Inserted segments become {nil, text}. Changed and moved-target segments
// need at least one addition range: when every range is an addition the old
// side is the text with additions masked out and the new side is the full
// text, otherwise the new side has deletions masked out. Everything else,
// including blank text, is skipped.
func AddedComparisons(segments []DiffSegment) []Comparison {
	var out []Comparison
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}

		if seg.Type == SegmentAdded {
			text := seg.Text
			out = append(out, Comparison{New: &text})
			continue
		}

		if len(seg.HighlightRanges) == 0 {
			continue
		}
		if seg.Type != SegmentChanged && seg.Type != SegmentMovedTarget {
			continue
		}

		var additions, deletions []HighlightRange
		for _, r := range seg.HighlightRanges {
			switch r.Type {
			case RangeAddition:
				additions = append(additions, r)
			case RangeDeletion:
				deletions = append(deletions, r)
			}
		}
		if len(additions) == 0 {
			continue
		}

		old := MaskRanges(seg.Text, additions)
		if len(additions) == len(seg.HighlightRanges) {
			text := seg.Text
			out = append(out, Comparison{Old: &old, New: &text})
			continue
		}
		text := MaskRanges(seg.Text, deletions)
		out = append(out, Comparison{Old: &old, New: &text})
	}
	return out
}

// MaskRanges removes the given byte ranges from the UTF-8 encoding of text.
// Offsets past either end are clamped.
func MaskRanges(text string, ranges []HighlightRange) string {
	b := []byte(text)
	for _, r := range ranges {
		start := max(r.Start, 0)
		end := min(r.Start+r.Length, len(b))
		for i := start; i < end; i++ {
			b[i] = 0
		}
	}

	out := b[:0]
	for _, c := range b {
		if c != 0 {
			out = append(out, c)
		}
	}
	return strings.ToValidUTF8(string(out), "�")
}

// Extract returns the sorted set of hostnames linked in the new side of each
// comparison but absent from its old side.
func Extract(comparisons []Comparison) []string {
	set := make(map[string]struct{})
	for _, c := range comparisons {
		if c.New == nil {
			continue
		}
		fresh := hostSet(*c.New)
		if c.Old != nil {
			for h := range hostSet(*c.Old) {
				delete(fresh, h)
			}
		}
		for h := range fresh {
			set[h] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// ExtractFromText returns the sorted set of hostnames linked in text.
func ExtractFromText(text string) []string {
	return sortedKeys(hostSet(text))
}

func hostSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	if !strings.Contains(text, "http://") && !strings.Contains(text, "https://") {
		return set
	}
	for _, link := range linkPattern.FindAllString(text, -1) {
		if h, ok := hostOf(link); ok {
			set[h] = struct{}{}
		}
	}
	return set
}

func hostOf(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	h := u.Hostname()
	if h == "" || !strings.Contains(h, ".") || !isServerName(h) {
		return "", false
	}
	labels := strings.Split(strings.TrimSuffix(h, "."), ".")
	if len(labels) < 2 || len(labels[len(labels)-1]) < 2 {
		return "", false
	}
	return strings.ToLower(h), true
}

// isServerName accepts only letters, digits, dots and hyphens. Hosts with
// other characters (such as underscores) are registry names, not servers.
func isServerName(h string) bool {
	for _, c := range h {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
