package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.baseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	fields := make([]EmbedField, 0, min(len(options.Fields), maxFields))
	for _, f := range options.Fields[:cap(fields)] {
		f.Value = truncate(f.Value, maxFieldValueLength)
		fields = append(fields, f)
	}

	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLength),
		URL:         options.URL,
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Fields:      fields,
	}
	return d.send(ctx, WebhookPayload{Username: d.config.Username, Embeds: []Embed{embed}})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	if err != nil {
		description = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeError, Title: title, Description: description})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string, fields ...EmbedField) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description, Fields: fields})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeError, Title: "Bug report", Description: message})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "discord.send: unexpected status %d", status)
		return fmt.Errorf("discord: unexpected status %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	if t == MessageTypeError {
		return colorError
	}
	return colorInfo
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
