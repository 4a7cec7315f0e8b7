// Package forest evaluates binary tree-ensemble models stored as JSON.
package forest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxDepth bounds a single tree walk so a cyclic model cannot spin forever.
const maxDepth = 1 << 12

// Load reads a model from a JSON file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("forest: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates a model.
func Decode(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("forest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks node references and leaf values.
func (m *Model) Validate() error {
	if len(m.Trees) == 0 {
		return ErrEmptyModel
	}
	for ti, tree := range m.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d is empty", ErrInvalidNode, ti)
		}
		for ni, n := range tree.Nodes {
			if n.Leaf {
				if len(n.Value) != 2 {
					return fmt.Errorf("%w: tree %d node %d needs 2 class values", ErrInvalidNode, ti, ni)
				}
				continue
			}
			if n.Feature < 0 || (m.NFeatures > 0 && n.Feature >= m.NFeatures) {
				return fmt.Errorf("%w: tree %d node %d feature %d", ErrInvalidNode, ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
				return fmt.Errorf("%w: tree %d node %d child out of range", ErrInvalidNode, ti, ni)
			}
		}
	}
	return nil
}

// Predict returns the mean class probabilities for one row.
func (m *Model) Predict(row []float32) (p0, p1 float32, err error) {
	if m.NFeatures > 0 && len(row) != m.NFeatures {
		return 0, 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, len(row), m.NFeatures)
	}
	var s0, s1 float64
	for ti := range m.Trees {
		leaf, err := m.Trees[ti].walk(row)
		if err != nil {
			return 0, 0, fmt.Errorf("tree %d: %w", ti, err)
		}
		s0 += float64(leaf.Value[0])
		s1 += float64(leaf.Value[1])
	}
	n := float64(len(m.Trees))
	return float32(s0 / n), float32(s1 / n), nil
}

// Classify predicts every row. Labels are 1 when the positive class wins;
// probs holds the positive-class probability.
func (m *Model) Classify(rows [][]float32) ([]int64, []float32, error) {
	labels := make([]int64, len(rows))
	probs := make([]float32, len(rows))
	for i, row := range rows {
		p0, p1, err := m.Predict(row)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		if p1 > p0 {
			labels[i] = 1
		}
		probs[i] = p1
	}
	return labels, probs, nil
}

func (t *Tree) walk(row []float32) (*Node, error) {
	idx := 0
	for depth := 0; depth < maxDepth; depth++ {
		n := &t.Nodes[idx]
		if n.Leaf {
			return n, nil
		}
		if n.Feature >= len(row) {
			return nil, ErrFeatureMismatch
		}
		if row[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return nil, fmt.Errorf("%w: depth exceeded", ErrInvalidNode)
}
