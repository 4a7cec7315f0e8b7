package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportedHostname is a hostname the classifier flagged in one revision.
type ReportedHostname struct {
	ID                uuid.UUID `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	WikiID            string    `json:"wiki_id"`
	User              string    `json:"user"`
	Page              string    `json:"page"`
	RevisionID        int64     `json:"revision_id"`
	RevisionTimestamp int64     `json:"revision_timestamp"`
	Hostname          string    `json:"hostname"`
	Score             float64   `json:"score"`
	ModelNumber       int       `json:"model_number"`
}
