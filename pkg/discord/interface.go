package discord

import (
	"context"

	pkgHttp "citron-srv/pkg/http"
	"citron-srv/pkg/log"
)

// IDiscord posts operator notifications to a webhook. Implementations are
// safe for concurrent use.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string, fields ...EmbedField) error
	ReportBug(ctx context.Context, message string) error
}

// DiscordWebhook identifies a webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New returns errWebhookRequired when the webhook is incomplete; callers
// treat Discord as optional.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: *webhook,
		config:  cfg,
		client: pkgHttp.NewClient(pkgHttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.RetryCount,
			RetryWait: cfg.RetryDelay,
		}),
		baseURL: webhookBaseURL,
	}, nil
}
