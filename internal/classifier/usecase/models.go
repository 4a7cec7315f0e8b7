package usecase

import (
	"fmt"

	"citron-srv/internal/classifier"
	"citron-srv/pkg/forest"
)

// ModelConfig points at a tree-ensemble model file.
type ModelConfig struct {
	ID     string
	Number int
	Path   string
}

// LoadModels reads every configured model file.
func LoadModels(cfgs []ModelConfig) ([]classifier.Model, error) {
	models := make([]classifier.Model, 0, len(cfgs))
	for _, c := range cfgs {
		m, err := forest.Load(c.Path)
		if err != nil {
			return nil, fmt.Errorf("load model %s: %w", c.ID, err)
		}
		models = append(models, classifier.Model{ID: c.ID, Number: c.Number, Engine: m})
	}
	return models, nil
}
