package hostname

// Diff segment kinds as reported by the wiki compare API.
const (
	SegmentContext     = 0
	SegmentAdded       = 1
	SegmentDeleted     = 2
	SegmentChanged     = 3
	SegmentMovedSource = 4
	SegmentMovedTarget = 5
)

// Highlight range kinds inside a changed segment.
const (
	RangeAddition = 0
	RangeDeletion = 1
)

// HighlightRange marks a span of a segment's text in UTF-8 byte offsets.
type HighlightRange struct {
	Start  int
	Length int
	Type   int
}

// DiffSegment is one line of a revision comparison.
type DiffSegment struct {
	Type            int
	Text            string
	HighlightRanges []HighlightRange
}

// Comparison pairs the text before and after an edit. Old is nil when the
// text is entirely new.
type Comparison struct {
	Old *string
	New *string
}
