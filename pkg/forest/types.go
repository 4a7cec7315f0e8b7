package forest

// Node is one split or leaf of a decision tree. Leaves carry per-class
// probabilities in Value; splits send a row left when row[Feature] <= Threshold.
type Node struct {
	Feature   int       `json:"f"`
	Threshold float32   `json:"t"`
	Left      int       `json:"l"`
	Right     int       `json:"r"`
	Leaf      bool      `json:"leaf"`
	Value     []float32 `json:"value,omitempty"`
}

// Tree is a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Model is a binary tree ensemble.
type Model struct {
	ID        string `json:"id"`
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}
