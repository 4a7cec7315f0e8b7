package http

import (
	"citron-srv/internal/classifier"
	"citron-srv/internal/feature"
)

const maxClassifyHostnames = 100

type classifyReq struct {
	Hostnames []string `json:"hostnames" binding:"required"`
	ModelID   string   `json:"model_id"`
}

func (r classifyReq) validate() error {
	if len(r.Hostnames) == 0 {
		return errInvalidRequest
	}
	if len(r.Hostnames) > maxClassifyHostnames {
		return errTooManyHostnames
	}
	return nil
}

type classifyResp struct {
	Model    classifier.ModelInfo      `json:"model"`
	Features []feature.HostnameFeature `json:"features"`
	Results  []classifier.Result       `json:"results"`
}

func (h *handler) newClassifyResp(features []feature.HostnameFeature, o classifier.ClassifyOutput) classifyResp {
	return classifyResp{
		Model:    o.Model,
		Features: features,
		Results:  o.Results,
	}
}
