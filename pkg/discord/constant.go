package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorInfo  = 0x3498DB
	colorError = 0xE74C3C

	// Discord rejects descriptions above 4096 characters and more than
	// 25 fields per embed.
	maxDescriptionLength = 4000
	maxFields            = 25
	maxFieldValueLength  = 1024
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryDelay: time.Second,
		Username:   "Citron",
	}
}
