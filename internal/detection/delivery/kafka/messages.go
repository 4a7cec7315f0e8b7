package kafka

import (
	"time"
)

// DetectionMessage - Kafka message for one reported hostname
type DetectionMessage struct {
	EventType         string    `json:"event_type"`
	ID                string    `json:"id"`
	WikiID            string    `json:"wiki_id"`
	Hostname          string    `json:"hostname"`
	Score             float64   `json:"score"`
	ModelNumber       int       `json:"model_number"`
	User              string    `json:"user"`
	Page              string    `json:"page"`
	RevisionID        int64     `json:"revision_id"`
	RevisionTimestamp int64     `json:"revision_timestamp"`
	DetectedAt        time.Time `json:"detected_at"`
}
