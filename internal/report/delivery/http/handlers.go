package http

import (
	"context"

	"citron-srv/internal/report"
	"citron-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Reconcile - POST /reports/reconcile
func (h *handler) Reconcile(c *gin.Context) {
	h.runJob(c, "Reconcile", h.uc.Reconcile)
}

// Announce - POST /reports/announce
func (h *handler) Announce(c *gin.Context) {
	h.runJob(c, "Announce", h.uc.Announce)
}

// SyncFeedback - POST /reports/feedback/sync
func (h *handler) SyncFeedback(c *gin.Context) {
	h.runJob(c, "SyncFeedback", h.uc.SyncFeedback)
}

func (h *handler) runJob(c *gin.Context, name string, fn func(context.Context, report.JobInput) (report.JobOutput, error)) {
	ctx := c.Request.Context()

	req, err := h.processJobRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := fn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.%s: usecase %s failed: %v", name, name, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newJobResp(o))
}

// GetReport - GET /wikis/:wiki_id/report?date=YYYY-MM-DD
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	r, err := h.uc.GetReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, r)
}

// ListArchives - GET /wikis/:wiki_id/report/archives?date=YYYY-MM-DD
func (h *handler) ListArchives(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	versions, err := h.uc.ListArchives(ctx, report.ListArchivesInput{WikiID: req.WikiID, Date: req.Date})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListArchives: usecase ListArchives failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListArchivesResp(versions))
}

// GetArchive - GET /wikis/:wiki_id/report/archives/:version?date=YYYY-MM-DD
func (h *handler) GetArchive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetArchiveRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	r, err := h.uc.GetArchive(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetArchive: usecase GetArchive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, r)
}
