package http

import (
	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/pkg/paginator"
	"citron-srv/pkg/response"
)

// maxCheckHostnames bounds one check request.
const maxCheckHostnames = 500

// =====================================================
// Request DTOs
// =====================================================

type getDetectionsReq struct {
	WikiID string `uri:"wiki_id" binding:"required"`
	Date   string `form:"date"`
	paginator.PaginateQuery
}

func (r getDetectionsReq) toInput() detection.GetDetectionsInput {
	return detection.GetDetectionsInput{
		WikiID:   r.WikiID,
		Date:     r.Date,
		PagQuery: r.PaginateQuery,
	}
}

type getIgnoredHostnamesReq struct {
	WikiID string `uri:"wiki_id" binding:"required"`
	paginator.PaginateQuery
}

func (r getIgnoredHostnamesReq) toInput() detection.GetIgnoredHostnamesInput {
	return detection.GetIgnoredHostnamesInput{
		WikiID:   r.WikiID,
		PagQuery: r.PaginateQuery,
	}
}

type ignoreHostnameReq struct {
	WikiID   string `json:"-"`
	Hostname string `json:"hostname" binding:"required"`
}

func (r ignoreHostnameReq) toInput() detection.IgnoreHostnameInput {
	return detection.IgnoreHostnameInput{WikiID: r.WikiID, Hostname: r.Hostname}
}

type checkHostnamesReq struct {
	WikiID    string   `json:"-"`
	Hostnames []string `json:"hostnames" binding:"required"`
}

func (r checkHostnamesReq) validate() error {
	if len(r.Hostnames) > maxCheckHostnames {
		return errTooManyHostnames
	}
	return nil
}

func (r checkHostnamesReq) toInput() detection.CheckHostnamesInput {
	return detection.CheckHostnamesInput{WikiID: r.WikiID, Hostnames: r.Hostnames}
}

// =====================================================
// Response DTOs
// =====================================================

type detectionResp struct {
	ID                string            `json:"id"`
	CreatedAt         response.DateTime `json:"created_at"`
	WikiID            string            `json:"wiki_id"`
	User              string            `json:"user"`
	Page              string            `json:"page"`
	RevisionID        int64             `json:"revision_id"`
	RevisionTimestamp int64             `json:"revision_timestamp"`
	Hostname          string            `json:"hostname"`
	Score             float64           `json:"score"`
	ModelNumber       int               `json:"model_number"`
}

type getDetectionsResp struct {
	Detections []detectionResp             `json:"detections"`
	Paginator  paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newGetDetectionsResp(o detection.GetDetectionsOutput) getDetectionsResp {
	items := make([]detectionResp, 0, len(o.Detections))
	for _, d := range o.Detections {
		items = append(items, detectionResp{
			ID:                d.ID.String(),
			CreatedAt:         response.DateTime(d.CreatedAt),
			WikiID:            d.WikiID,
			User:              d.User,
			Page:              d.Page,
			RevisionID:        d.RevisionID,
			RevisionTimestamp: d.RevisionTimestamp,
			Hostname:          d.Hostname,
			Score:             d.Score,
			ModelNumber:       d.ModelNumber,
		})
	}
	return getDetectionsResp{Detections: items, Paginator: o.Pagination.ToResponse()}
}

type ignoredHostnameResp struct {
	ID        string             `json:"id,omitempty"`
	CreatedAt *response.DateTime `json:"created_at,omitempty"`
	WikiID    string             `json:"wiki_id"`
	Hostname  string             `json:"hostname"`
}

func newIgnoredHostnameResp(ih model.IgnoredHostname) ignoredHostnameResp {
	resp := ignoredHostnameResp{WikiID: ih.WikiID, Hostname: ih.Hostname}
	if !ih.CreatedAt.IsZero() {
		resp.ID = ih.ID.String()
		createdAt := response.DateTime(ih.CreatedAt)
		resp.CreatedAt = &createdAt
	}
	return resp
}

type getIgnoredHostnamesResp struct {
	Hostnames []ignoredHostnameResp       `json:"hostnames"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newGetIgnoredHostnamesResp(o detection.GetIgnoredHostnamesOutput) getIgnoredHostnamesResp {
	items := make([]ignoredHostnameResp, 0, len(o.Hostnames))
	for _, ih := range o.Hostnames {
		items = append(items, newIgnoredHostnameResp(ih))
	}
	return getIgnoredHostnamesResp{Hostnames: items, Paginator: o.Pagination.ToResponse()}
}

type ignoreHostnameResp struct {
	ignoredHostnameResp
	Created bool `json:"created"`
}

func (h *handler) newIgnoreHostnameResp(o detection.IgnoreHostnameOutput) ignoreHostnameResp {
	return ignoreHostnameResp{ignoredHostnameResp: newIgnoredHostnameResp(o.Hostname), Created: o.Created}
}

type checkHostnamesResp struct {
	Results []detection.HostnameCheck `json:"results"`
}
