package usecase

import (
	"context"
	"fmt"

	"citron-srv/internal/classifier"
)

func (uc *implUseCase) Model(id string) (classifier.ModelInfo, error) {
	m, err := uc.resolve(id)
	if err != nil {
		return classifier.ModelInfo{}, err
	}
	return classifier.ModelInfo{ID: m.ID, Number: m.Number}, nil
}

func (uc *implUseCase) Classify(ctx context.Context, input classifier.ClassifyInput) (classifier.ClassifyOutput, error) {
	m, err := uc.resolve(input.ModelID)
	if err != nil {
		uc.l.Errorf(ctx, "classifier.usecase.Classify: %v", err)
		return classifier.ClassifyOutput{}, err
	}
	out := classifier.ClassifyOutput{
		Model:   classifier.ModelInfo{ID: m.ID, Number: m.Number},
		Results: []classifier.Result{},
	}
	if len(input.Features) == 0 {
		return out, nil
	}

	rows := make([][]float32, len(input.Features))
	for i, f := range input.Features {
		rows[i] = f.Vector()
	}

	labels, probs, err := m.Engine.Classify(rows)
	if err != nil {
		uc.l.Errorf(ctx, "classifier.usecase.Classify: model %s: %v", m.ID, err)
		return classifier.ClassifyOutput{}, fmt.Errorf("%w: %v", classifier.ErrInferenceFailed, err)
	}
	if len(labels) != len(rows) || len(probs) != len(rows) {
		uc.l.Errorf(ctx, "classifier.usecase.Classify: model %s returned %d labels and %d probabilities for %d rows",
			m.ID, len(labels), len(probs), len(rows))
		return classifier.ClassifyOutput{}, classifier.ErrInferenceFailed
	}

	out.Results = make([]classifier.Result, len(rows))
	for i, f := range input.Features {
		out.Results[i] = classifier.Result{
			Hostname:    f.Hostname,
			Label:       labels[i],
			Probability: probs[i],
		}
	}
	return out, nil
}

func (uc *implUseCase) resolve(id string) (classifier.Model, error) {
	if id == "" {
		id = uc.defaultModel
	}
	m, ok := uc.models[id]
	if !ok {
		return classifier.Model{}, fmt.Errorf("%w: %s", classifier.ErrModelNotFound, id)
	}
	return m, nil
}
