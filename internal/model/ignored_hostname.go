package model

import (
	"time"

	"github.com/google/uuid"
)

// IgnoredHostname exempts a hostname from detection on one wiki.
type IgnoredHostname struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	WikiID    string    `json:"wiki_id"`
	Hostname  string    `json:"hostname"`
}
