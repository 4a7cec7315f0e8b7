package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return errors.New("kafka: topic is required")
	}
	return nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	c := sarama.NewConfig()
	c.Version = kafkaVersion
	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Compression = sarama.CompressionSnappy
	c.Producer.Partitioner = sarama.NewHashPartitioner
	c.Producer.Return.Successes = true
	c.Producer.Retry.Max = producerRetryMax
	c.Producer.Retry.Backoff = producerRetryGap
	c.Producer.Timeout = producerTimeout
	if cfg.ClientID != "" {
		c.ClientID = cfg.ClientID
	}
	return c
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

func (p *producerImpl) record(msg Message) *sarama.ProducerMessage {
	pm := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(msg.Value)}
	if len(msg.Key) > 0 {
		pm.Key = sarama.ByteEncoder(msg.Key)
	}
	return pm
}

func (p *producerImpl) Publish(msg Message) error {
	if _, _, err := p.producer.SendMessage(p.record(msg)); err != nil {
		return fmt.Errorf("kafka: failed to publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *producerImpl) PublishBatch(msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}
	records := make([]*sarama.ProducerMessage, len(msgs))
	for i, m := range msgs {
		records[i] = p.record(m)
	}
	err := p.producer.SendMessages(records)
	if err == nil {
		return nil
	}

	var perrs sarama.ProducerErrors
	if !errors.As(err, &perrs) {
		return fmt.Errorf("kafka: failed to publish batch to %s: %w", p.topic, err)
	}
	errs := make([]error, 0, len(perrs))
	for _, pe := range perrs {
		var key []byte
		if pe.Msg.Key != nil {
			key, _ = pe.Msg.Key.Encode()
		}
		errs = append(errs, fmt.Errorf("kafka: record %q: %w", key, pe.Err))
	}
	return errors.Join(errs...)
}

func (p *producerImpl) Topic() string {
	return p.topic
}

func (p *producerImpl) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return errors.New("kafka: producer is not initialized")
	}
	return nil
}
