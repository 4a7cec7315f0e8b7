package kafka

// IProducer publishes records to one topic. Implementations are safe for
// concurrent use.
type IProducer interface {
	Publish(msg Message) error
	// PublishBatch sends msgs in one round trip. The error lists every
	// record that failed.
	PublishBatch(msgs []Message) error
	Topic() string
	Close() error
	HealthCheck() error
}

// NewProducer creates a synchronous producer for cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}
