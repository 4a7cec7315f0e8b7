package stream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/sse"
)

// Start launches the workers, the subscription and the watchdog, then
// returns. They run until ctx is cancelled or Close is called.
func (i *Ingestor) Start(ctx context.Context) error {
	i.mu.Lock()
	if i.ctx != nil {
		i.mu.Unlock()
		return errors.New("stream: ingestor already started")
	}
	i.ctx, i.cancel = context.WithCancel(ctx)
	runCtx := i.ctx
	i.mu.Unlock()

	for n := 0; n < i.cfg.Workers; n++ {
		i.workers.Add(1)
		go i.work(runCtx)
	}
	i.startSubscription()
	go i.watchdog(runCtx)

	i.l.Infof(ctx, "detection.delivery.stream.Start: consuming %s with %d workers", i.cfg.URL, i.cfg.Workers)
	return nil
}

// Close stops the subscription and waits for the workers. Queued changes
// are discarded.
func (i *Ingestor) Close() {
	i.mu.Lock()
	cancel := i.cancel
	i.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	i.stopSubscription()
	i.workers.Wait()
}

func (i *Ingestor) startSubscription() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.ctx == nil || i.ctx.Err() != nil {
		return
	}
	subCtx, cancel := context.WithCancel(i.ctx)
	done := make(chan struct{})
	i.subCancel = cancel
	i.subDone = done
	go func() {
		defer close(done)
		i.subscribe(subCtx)
	}()
}

// stopSubscription cancels the current subscription and waits for its
// goroutine to exit.
func (i *Ingestor) stopSubscription() {
	i.mu.Lock()
	cancel, done := i.subCancel, i.subDone
	i.subCancel, i.subDone = nil, nil
	i.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// subscribe keeps one subscription alive, reconnecting with exponential
// backoff from the current cursor.
func (i *Ingestor) subscribe(ctx context.Context) {
	backoff := i.cfg.MinBackoff
	for {
		opened := false
		err := i.sub.Subscribe(ctx, i.cfg.URL, i.LastEventID(),
			func() {
				opened = true
				i.l.Info(ctx, "detection.delivery.stream.subscribe: connected to recent changes stream")
			},
			func(ev sse.Event) { i.handle(ctx, ev) },
		)
		if ctx.Err() != nil {
			return
		}
		if opened {
			backoff = i.cfg.MinBackoff
		}

		i.l.Warnf(ctx, "detection.delivery.stream.subscribe: stream ended: %v, reconnecting in %s", err, backoff)
		if i.metrics != nil {
			i.metrics.StreamReconnects.Inc()
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		backoff = min(backoff*2, i.cfg.MaxBackoff)
	}
}

// handle runs on the read loop and never blocks on the workers.
func (i *Ingestor) handle(ctx context.Context, ev sse.Event) {
	if ev.ID != "" {
		i.setLastEventID(ev.ID)
	}
	i.received.Add(1)
	i.count(metrics.OutcomeReceived)

	var c model.Change
	if err := json.Unmarshal([]byte(ev.Data), &c); err != nil {
		i.count(metrics.OutcomeMalformed)
		i.l.Warnf(ctx, "detection.delivery.stream.handle: failed to parse the change: %v", err)
		return
	}

	if !detection.Admit(c, i.cfg.Wikis, i.now(), i.cfg.Window) {
		return
	}

	select {
	case i.queue <- c:
		i.count(metrics.OutcomeAdmitted)
	default:
		i.count(metrics.OutcomeDropped)
		i.l.Warnf(ctx, "detection.delivery.stream.handle: queue full, dropping %s", identity(c))
	}
}

func (i *Ingestor) count(outcome string) {
	if i.metrics != nil {
		i.metrics.StreamEvents.WithLabelValues(outcome).Inc()
	}
}

// watchdog restarts the subscription when no event arrived during an
// interval.
func (i *Ingestor) watchdog(ctx context.Context) {
	ticker := time.NewTicker(i.cfg.WatchdogInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			i.checkEventFlow(ctx)
		}
	}
}

func (i *Ingestor) checkEventFlow(ctx context.Context) {
	n := i.received.Swap(0)
	if n > 0 {
		i.l.Infof(ctx, "detection.delivery.stream.checkEventFlow: received %d events in the last %s", n, i.cfg.WatchdogInterval)
		return
	}

	i.l.Warnf(ctx, "detection.delivery.stream.checkEventFlow: no events received in the last %s, restarting stream", i.cfg.WatchdogInterval)
	if i.metrics != nil {
		i.metrics.WatchdogRestarts.Inc()
	}
	i.stopSubscription()
	i.startSubscription()
}
