package wiki

import "citron-srv/pkg/hostname"

// HighlightRange is a byte span inside a diff line.
type HighlightRange struct {
	Start  int `json:"start"`
	Length int `json:"length"`
	Type   int `json:"type"`
}

// Diff is one line of a revision comparison.
type Diff struct {
	Type            int              `json:"type"`
	LineNumber      *int             `json:"lineNumber,omitempty"`
	Text            string           `json:"text"`
	HighlightRanges []HighlightRange `json:"highlightRanges,omitempty"`
}

// RevisionRef identifies one side of a comparison.
type RevisionRef struct {
	ID       int64  `json:"id"`
	SlotRole string `json:"slot_role"`
}

// Comparison is the body of /revision/{from}/compare/{to}.
type Comparison struct {
	From RevisionRef `json:"from"`
	To   RevisionRef `json:"to"`
	Diff []Diff      `json:"diff"`
}

// Segments converts the diff lines for hostname extraction.
func (c *Comparison) Segments() []hostname.DiffSegment {
	segments := make([]hostname.DiffSegment, 0, len(c.Diff))
	for _, d := range c.Diff {
		ranges := make([]hostname.HighlightRange, 0, len(d.HighlightRanges))
		for _, r := range d.HighlightRanges {
			ranges = append(ranges, hostname.HighlightRange{Start: r.Start, Length: r.Length, Type: r.Type})
		}
		segments = append(segments, hostname.DiffSegment{Type: d.Type, Text: d.Text, HighlightRanges: ranges})
	}
	return segments
}

// Revision is the body of /revision/{id}.
type Revision struct {
	ID           int64  `json:"id"`
	ContentModel string `json:"content_model"`
	Source       string `json:"source"`
}

// Page is the body of /page/{title}.
type Page struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ContentModel string `json:"content_model"`
	Source       string `json:"source"`
}
