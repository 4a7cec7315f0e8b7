package hostname

import (
	"strings"

	"citron-srv/pkg/table"
)

// SuffixSet is a fixed set of dot-prefixed hostname suffixes (".blogspot.com")
// whose subdomains are never reported.
type SuffixSet struct {
	entries map[string]struct{}
}

// NewSuffixSet builds a SuffixSet from entries.
func NewSuffixSet(entries ...string) *SuffixSet {
	return &SuffixSet{entries: table.Set(entries)}
}

// LoadSuffixSet reads the first column of the CSV file at path.
func LoadSuffixSet(path string) (*SuffixSet, error) {
	values, err := table.ReadFirstColumn(path)
	if err != nil {
		return nil, err
	}
	return NewSuffixSet(values...), nil
}

// Len returns the number of entries.
func (s *SuffixSet) Len() int {
	return len(s.entries)
}

// Contains reports whether hostname ends in a listed suffix. Hostnames with
// four or more labels are checked against their last two and last three
// labels, three-label hostnames against their last two; shorter ones never
// match.
func (s *SuffixSet) Contains(hostname string) bool {
	parts := strings.Split(hostname, ".")
	n := len(parts)
	switch {
	case n >= 4:
		return s.has("." + strings.Join(parts[n-2:], ".")) ||
			s.has("."+strings.Join(parts[n-3:], "."))
	case n == 3:
		return s.has("." + strings.Join(parts[n-2:], "."))
	default:
		return false
	}
}

func (s *SuffixSet) has(suffix string) bool {
	_, ok := s.entries[suffix]
	return ok
}
