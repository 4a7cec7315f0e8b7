package classifier

import "citron-srv/internal/feature"

// Model binds a loaded engine to its id and the number stamped on detections.
type Model struct {
	ID     string
	Number int
	Engine Engine
}

// ModelInfo describes a registered model.
type ModelInfo struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

type ClassifyInput struct {
	Features []feature.HostnameFeature
	ModelID  string
}

type ClassifyOutput struct {
	Model   ModelInfo
	Results []Result
}

// Result is the verdict for one hostname. Label 1 means spam.
type Result struct {
	Hostname    string  `json:"hostname"`
	Label       int64   `json:"label"`
	Probability float32 `json:"probability"`
}
