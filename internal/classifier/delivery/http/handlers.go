package http

import (
	"citron-srv/internal/classifier"
	"citron-srv/internal/feature"
	"citron-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Classify - POST /classify
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	features, err := h.featureUC.CollectMany(ctx, feature.CollectManyInput{Hostnames: req.Hostnames})
	if err != nil {
		h.l.Errorf(ctx, "classifier.delivery.http.Classify: usecase CollectMany failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Classify(ctx, classifier.ClassifyInput{Features: features, ModelID: req.ModelID})
	if err != nil {
		h.l.Errorf(ctx, "classifier.delivery.http.Classify: usecase Classify failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newClassifyResp(features, o))
}
