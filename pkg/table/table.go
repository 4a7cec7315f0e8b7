// Package table loads the static CSV lookup files shipped with the service.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFirstColumn returns the first field of every record in the CSV file at
// path, in file order. Empty lines are skipped.
func ReadFirstColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	values, err := FirstColumn(f)
	if err != nil {
		return nil, fmt.Errorf("table: read %s: %w", path, err)
	}
	return values, nil
}

// FirstColumn is ReadFirstColumn over an arbitrary reader.
func FirstColumn(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var values []string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		values = append(values, record[0])
	}
}

// Set builds a membership set from values.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Ranks maps each value to its 1-based position. A repeated value keeps its
// first position, but still consumes a rank.
func Ranks(values []string) map[string]int {
	ranks := make(map[string]int, len(values))
	for i, v := range values {
		if _, ok := ranks[v]; ok {
			continue
		}
		ranks[v] = i + 1
	}
	return ranks
}
