package producer

import (
	"citron-srv/internal/detection"
	pkgKafka "citron-srv/pkg/kafka"
	"citron-srv/pkg/log"
)

// Producer publishes detection events
type Producer interface {
	detection.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new detection producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
