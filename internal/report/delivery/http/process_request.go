package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processJobRequest accepts an empty body as "every wiki, default day".
func (h *handler) processJobRequest(c *gin.Context) (jobReq, error) {
	var req jobReq
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Errorf(ctx, "report.delivery.http.processJobRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}
	return req, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, error) {
	var req getReportReq
	ctx := c.Request.Context()

	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGetReportRequest: ShouldBindUri failed: %v", err)
		return req, errWikiNotConfigured
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGetReportRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidDate
	}
	return req, nil
}

func (h *handler) processGetArchiveRequest(c *gin.Context) (getArchiveReq, error) {
	var req getArchiveReq
	ctx := c.Request.Context()

	if err := c.ShouldBindUri(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGetArchiveRequest: ShouldBindUri failed: %v", err)
		return req, errReportNotFound
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGetArchiveRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidDate
	}
	return req, nil
}
