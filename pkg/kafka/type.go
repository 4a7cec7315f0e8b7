package kafka

import "github.com/IBM/sarama"

// Config holds the producer settings.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Message is one keyed record. Records with the same key land on the same
// partition.
type Message struct {
	Key   []byte
	Value []byte
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
