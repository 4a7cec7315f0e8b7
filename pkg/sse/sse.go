// Package sse is a minimal Server-Sent Events client.
package sse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxLineBytes = 4 << 20

var ErrUnexpectedStatus = errors.New("sse: unexpected status")

// Event is one dispatched message.
type Event struct {
	ID   string
	Type string
	Data string
}

// Client opens event streams. The zero value is not usable; use New.
type Client struct {
	http      *http.Client
	userAgent string
}

// New returns a Client. A nil httpClient selects one without a timeout, which
// streams need.
func New(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{http: httpClient, userAgent: userAgent}
}

// Subscribe connects to url and calls onEvent for every event until the stream
// ends, ctx is cancelled or reading fails. onOpen runs once the server has
// answered 200. A clean end of stream returns io.EOF.
func (c *Client) Subscribe(ctx context.Context, url, lastEventID string, onOpen func(), onEvent func(Event)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("sse: new request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if lastEventID != "" {
		req.Header.Set("Last-Event-ID", lastEventID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sse: connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if onOpen != nil {
		onOpen()
	}

	if err := Read(resp.Body, onEvent); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return io.EOF
}

// Read parses an event stream from r, calling onEvent per dispatched event.
// It returns nil at end of input.
func Read(r io.Reader, onEvent func(Event)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		ev      Event
		data    strings.Builder
		hasData bool
	)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			if hasData {
				ev.Data = data.String()
				onEvent(ev)
			}
			ev = Event{ID: ev.ID}
			data.Reset()
			hasData = false
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				ev.ID = value
			}
		case "event":
			ev.Type = value
		}
	}
	return sc.Err()
}
