package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGetDetectionsRequest(c *gin.Context) (getDetectionsReq, error) {
	var req getDetectionsReq
	ctx := c.Request.Context()

	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processGetDetectionsRequest: ShouldBindUri failed: %v", err)
		return req, errWikiNotConfigured
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processGetDetectionsRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidDate
	}
	return req, nil
}

func (h *handler) processGetIgnoredHostnamesRequest(c *gin.Context) (getIgnoredHostnamesReq, error) {
	var req getIgnoredHostnamesReq
	ctx := c.Request.Context()

	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processGetIgnoredHostnamesRequest: ShouldBindUri failed: %v", err)
		return req, errWikiNotConfigured
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processGetIgnoredHostnamesRequest: ShouldBindQuery failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processIgnoreHostnameRequest(c *gin.Context) (ignoreHostnameReq, error) {
	var req ignoreHostnameReq
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processIgnoreHostnameRequest: ShouldBindJSON failed: %v", err)
		return req, errEmptyHostname
	}
	req.WikiID = c.Param("wiki_id")
	return req, nil
}

func (h *handler) processCheckHostnamesRequest(c *gin.Context) (checkHostnamesReq, error) {
	var req checkHostnamesReq
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processCheckHostnamesRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	if err := req.validate(); err != nil {
		h.l.Errorf(ctx, "detection.delivery.http.processCheckHostnamesRequest: validate failed: %v", err)
		return req, err
	}
	req.WikiID = c.Param("wiki_id")
	return req, nil
}
