package kafka

import (
	"fmt"
	"sync"

	"citron-srv/config"
	"citron-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.RWMutex
)

// ConnectProducer creates the detection event producer once. It returns a nil
// producer without error when Kafka is disabled.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// ProducerHealthCheck reports the producer state. A disabled producer is healthy.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producerInstance == nil {
		return nil
	}
	return producerInstance.HealthCheck()
}

// DisconnectProducer closes the producer and resets the singleton.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}
