package model

// Report is the daily JSON document kept on the wiki. Field order and names
// are read by the on-wiki gadget.
type Report struct {
	Version   int                      `json:"version"`
	UpdatedAt string                   `json:"updatedAt"`
	Hostnames []ReportHostname         `json:"hostnames"`
	Revisions map[int64]ReportRevision `json:"revisions"`
	Feedbacks []ReportFeedback         `json:"feedbacks"`
}

// ReportHostname aggregates the detections of one hostname over a day.
type ReportHostname struct {
	Hostname    string  `json:"hostname"`
	Time        string  `json:"time"`
	Score       float64 `json:"score"`
	RevisionIDs []int64 `json:"revisionIds"`
}

// ReportRevision identifies where a revision was made.
type ReportRevision struct {
	Page string `json:"page"`
	User string `json:"user"`
}

// ReportFeedback is a reviewer verdict added to the document on-wiki.
type ReportFeedback struct {
	CreatedAt string `json:"createdAt"`
	CreatedBy int64  `json:"createdBy"`
	Hostname  string `json:"hostname"`
	Status    int    `json:"status"`
	Hash      string `json:"hash"`
	User      string `json:"user"`
	Synced    bool   `json:"synced"`
}
