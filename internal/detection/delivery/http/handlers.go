package http

import (
	"citron-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDetections - GET /wikis/:wiki_id/detections?date=YYYY-MM-DD
func (h *handler) GetDetections(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetDetectionsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetDetections(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.GetDetections: usecase GetDetections failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetDetectionsResp(o))
}

// GetIgnoredHostnames - GET /wikis/:wiki_id/ignored-hostnames
func (h *handler) GetIgnoredHostnames(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetIgnoredHostnamesRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetIgnoredHostnames(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.GetIgnoredHostnames: usecase GetIgnoredHostnames failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetIgnoredHostnamesResp(o))
}

// IgnoreHostname - POST /wikis/:wiki_id/ignored-hostnames
func (h *handler) IgnoreHostname(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIgnoreHostnameRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.IgnoreHostname(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.IgnoreHostname: usecase IgnoreHostname failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIgnoreHostnameResp(o))
}

// CheckHostnames - POST /wikis/:wiki_id/hostnames/check
func (h *handler) CheckHostnames(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCheckHostnamesRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	results, err := h.uc.CheckHostnames(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.CheckHostnames: usecase CheckHostnames failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, checkHostnamesResp{Results: results})
}
