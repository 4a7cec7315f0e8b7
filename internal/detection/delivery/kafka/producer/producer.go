package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkaDelivery "citron-srv/internal/detection/delivery/kafka"
	"citron-srv/internal/model"
	pkgKafka "citron-srv/pkg/kafka"
)

// PublishDetections sends the detections as one batch, keyed by wiki and
// hostname so a hostname's events stay on one partition. A detection that
// cannot be encoded is reported without blocking the others.
func (p *implProducer) PublishDetections(ctx context.Context, detections []model.ReportedHostname) error {
	var errs []error
	msgs := make([]pkgKafka.Message, 0, len(detections))
	for _, d := range detections {
		body, err := json.Marshal(toMessage(d))
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to marshal detection %s: %w", d.ID, err))
			continue
		}
		msgs = append(msgs, pkgKafka.Message{Key: []byte(d.WikiID + ":" + d.Hostname), Value: body})
	}

	if err := p.producer.PublishBatch(msgs); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	p.l.Debugf(ctx, "detection.delivery.kafka.producer.PublishDetections: published %d detections to %s", len(msgs), p.producer.Topic())
	return nil
}

func toMessage(d model.ReportedHostname) kafkaDelivery.DetectionMessage {
	return kafkaDelivery.DetectionMessage{
		EventType:         kafkaDelivery.EventTypeDetected,
		ID:                d.ID.String(),
		WikiID:            d.WikiID,
		Hostname:          d.Hostname,
		Score:             d.Score,
		ModelNumber:       d.ModelNumber,
		User:              d.User,
		Page:              d.Page,
		RevisionID:        d.RevisionID,
		RevisionTimestamp: d.RevisionTimestamp,
		DetectedAt:        d.CreatedAt,
	}
}
