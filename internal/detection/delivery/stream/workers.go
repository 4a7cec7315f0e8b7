package stream

import (
	"context"
	"fmt"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/pkg/log"

	"github.com/google/uuid"
)

func (i *Ingestor) work(ctx context.Context) {
	defer i.workers.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-i.queue:
			i.process(ctx, c)
		}
	}
}

func (i *Ingestor) process(ctx context.Context, c model.Change) {
	ctx = log.WithCorrelationID(ctx, uuid.NewString())
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			i.l.Errorf(ctx, "detection.delivery.stream.process: panic while processing %s: %v", identity(c), r)
		}
		if i.metrics != nil {
			i.metrics.EventDuration.Observe(time.Since(start).Seconds())
		}
	}()

	i.l.Infof(ctx, "detection.delivery.stream.process: processing %s", identity(c))
	if _, err := i.uc.Process(ctx, detection.ProcessInput{Change: c}); err != nil {
		i.l.Errorf(ctx, "detection.delivery.stream.process: unable to process %s: %v", identity(c), err)
	}
}

func identity(c model.Change) string {
	return fmt.Sprintf("Change(wiki=%s, user=%s, page=%s, revision=%d, type=%s)",
		c.Wiki, c.User, c.Title, c.Revision.New, c.Type)
}
