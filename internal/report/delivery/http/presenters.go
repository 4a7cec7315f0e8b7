package http

import "citron-srv/internal/report"

// =====================================================
// Request DTOs
// =====================================================

// jobReq is the optional body of the job triggers.
type jobReq struct {
	WikiID string `json:"wiki_id"`
	Date   string `json:"date"`
}

func (r jobReq) toInput() report.JobInput {
	return report.JobInput{WikiID: r.WikiID, Date: r.Date}
}

type getReportReq struct {
	WikiID string `uri:"wiki_id" binding:"required"`
	Date   string `form:"date"`
}

func (r getReportReq) toInput() report.GetReportInput {
	return report.GetReportInput{WikiID: r.WikiID, Date: r.Date}
}

type getArchiveReq struct {
	WikiID  string `uri:"wiki_id" binding:"required"`
	Version string `uri:"version" binding:"required"`
	Date    string `form:"date"`
}

func (r getArchiveReq) toInput() report.GetArchiveInput {
	return report.GetArchiveInput{WikiID: r.WikiID, Date: r.Date, Version: r.Version}
}

// =====================================================
// Response DTOs
// =====================================================

type jobResp struct {
	Date    string              `json:"date"`
	Results []report.WikiResult `json:"results"`
}

func (h *handler) newJobResp(o report.JobOutput) jobResp {
	results := o.Results
	if results == nil {
		results = []report.WikiResult{}
	}
	return jobResp{Date: o.Date, Results: results}
}

type listArchivesResp struct {
	Versions []report.ArchivedVersion `json:"versions"`
}

func (h *handler) newListArchivesResp(versions []report.ArchivedVersion) listArchivesResp {
	if versions == nil {
		versions = []report.ArchivedVersion{}
	}
	return listArchivesResp{Versions: versions}
}
