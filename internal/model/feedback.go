package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback statuses as written by reviewers.
const (
	FeedbackGood = 0
	FeedbackBad  = 1
)

// Feedback is one reviewer verdict copied from a finalized report.
type Feedback struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  int64     `json:"created_by"`
	WikiID     string    `json:"wiki_id"`
	ReportDate string    `json:"report_date"`
	Hostname   string    `json:"hostname"`
	Status     int       `json:"status"`
	Hash       string    `json:"hash"`
}
