package kafka

import (
	"errors"
	"strings"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestValidateProducerConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Brokers: []string{"localhost:9092"}, Topic: "citron.detections"}},
		{name: "no brokers", cfg: Config{Topic: "citron.detections"}, wantErr: true},
		{name: "no topic", cfg: Config{Brokers: []string{"localhost:9092"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProducerConfig(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateProducerConfig error mismatch: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSaramaConfig(t *testing.T) {
	c := newSaramaConfig(Config{ClientID: "citron"})
	if c.ClientID != "citron" {
		t.Errorf("ClientID mismatch: got %s, want citron", c.ClientID)
	}
	if !c.Producer.Return.Successes {
		t.Error("sync producer requires Return.Successes")
	}
	if c.Producer.RequiredAcks != sarama.WaitForLocal {
		t.Errorf("RequiredAcks mismatch: got %v, want %v", c.Producer.RequiredAcks, sarama.WaitForLocal)
	}
}

func newMockProducer(t *testing.T) (*mocks.SyncProducer, *producerImpl) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mp := mocks.NewSyncProducer(t, cfg)
	return mp, &producerImpl{producer: mp, topic: "citron.detections"}
}

func TestPublishBatch(t *testing.T) {
	t.Run("all delivered", func(t *testing.T) {
		mp, p := newMockProducer(t)
		mp.ExpectSendMessageAndSucceed()
		mp.ExpectSendMessageAndSucceed()

		err := p.PublishBatch([]Message{
			{Key: []byte("zhwiki:a.test"), Value: []byte("{}")},
			{Key: []byte("zhwiki:b.test"), Value: []byte("{}")},
		})
		if err != nil {
			t.Errorf("PublishBatch returned error: %v", err)
		}
		if err := mp.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})

	t.Run("one record fails", func(t *testing.T) {
		mp, p := newMockProducer(t)
		broker := errors.New("leader not available")
		mp.ExpectSendMessageAndSucceed()
		mp.ExpectSendMessageAndFail(broker)

		err := p.PublishBatch([]Message{
			{Key: []byte("zhwiki:a.test"), Value: []byte("{}")},
			{Key: []byte("zhwiki:b.test"), Value: []byte("{}")},
		})
		if !errors.Is(err, broker) {
			t.Fatalf("error mismatch: got %v, want %v", err, broker)
		}
		if !strings.Contains(err.Error(), "zhwiki:b.test") {
			t.Errorf("error should name the failed key: got %v", err)
		}
		_ = mp.Close()
	})

	t.Run("empty batch", func(t *testing.T) {
		mp, p := newMockProducer(t)
		if err := p.PublishBatch(nil); err != nil {
			t.Errorf("PublishBatch returned error: %v", err)
		}
		_ = mp.Close()
	})
}
