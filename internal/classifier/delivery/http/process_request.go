package http

import (
	"strings"

	"citron-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processClassifyRequest(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "classifier.delivery.http.processClassifyRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}
	for i, hn := range req.Hostnames {
		req.Hostnames[i] = strings.ToLower(strings.TrimSpace(hn))
	}
	req.Hostnames = util.Unique(req.Hostnames)
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
