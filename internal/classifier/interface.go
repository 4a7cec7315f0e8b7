package classifier

import (
	"context"
)

// Engine runs inference over encoded feature rows. It returns one label and
// one positive-class probability per row.
type Engine interface {
	Classify(rows [][]float32) (labels []int64, probabilities []float32, err error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
	// Model resolves a model id; an empty id selects the default model.
	Model(id string) (ModelInfo, error)
}
