package usecase

import (
	"fmt"

	"citron-srv/internal/classifier"
	"citron-srv/pkg/log"
)

type implUseCase struct {
	models       map[string]classifier.Model
	defaultModel string
	l            log.Logger
}

// New registers models. defaultModel must name one of them; when empty the
// first model is the default.
func New(models []classifier.Model, defaultModel string, l log.Logger) (classifier.UseCase, error) {
	if len(models) == 0 {
		return nil, classifier.ErrNoModels
	}

	registry := make(map[string]classifier.Model, len(models))
	for _, m := range models {
		if _, ok := registry[m.ID]; ok {
			return nil, fmt.Errorf("%w: %s", classifier.ErrDuplicateModel, m.ID)
		}
		registry[m.ID] = m
	}

	if defaultModel == "" {
		defaultModel = models[0].ID
	}
	if _, ok := registry[defaultModel]; !ok {
		return nil, fmt.Errorf("%w: default %s", classifier.ErrModelNotFound, defaultModel)
	}

	return &implUseCase{
		models:       registry,
		defaultModel: defaultModel,
		l:            l,
	}, nil
}
