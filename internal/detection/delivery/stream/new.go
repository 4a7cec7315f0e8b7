package stream

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"citron-srv/internal/detection"
	"citron-srv/internal/model"
	"citron-srv/pkg/log"
	"citron-srv/pkg/metrics"
	"citron-srv/pkg/sse"
)

const (
	DefaultURL              = "https://stream.wikimedia.org/v2/stream/recentchange"
	DefaultWatchdogInterval = 5 * time.Minute
	DefaultMinBackoff       = time.Second
	DefaultMaxBackoff       = 2 * time.Minute
	DefaultWorkers          = 8
	DefaultQueueSize        = 256
)

// Subscriber opens one event stream and blocks until it ends. *sse.Client
// implements it.
type Subscriber interface {
	Subscribe(ctx context.Context, url, lastEventID string, onOpen func(), onEvent func(sse.Event)) error
}

// Config holds the dependencies and tuning of an Ingestor
type Config struct {
	Logger     log.Logger
	UseCase    detection.UseCase
	Subscriber Subscriber
	Metrics    *metrics.Metrics
	Wikis      map[string]model.Wiki

	URL              string
	Window           time.Duration
	WatchdogInterval time.Duration
	MinBackoff       time.Duration
	MaxBackoff       time.Duration
	Workers          int
	QueueSize        int
}

// Ingestor consumes the recent-change stream and feeds admitted changes to a
// bounded worker pool.
type Ingestor struct {
	l       log.Logger
	uc      detection.UseCase
	sub     Subscriber
	metrics *metrics.Metrics
	cfg     Config

	cursorMu    sync.Mutex
	lastEventID string
	received    atomic.Int64

	queue chan model.Change
	now   func() time.Time

	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	subCancel context.CancelFunc
	subDone   chan struct{}
	workers   sync.WaitGroup
}

// New validates cfg and creates an Ingestor
func New(cfg Config) (*Ingestor, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Subscriber == nil {
		return nil, fmt.Errorf("subscriber is required")
	}
	if len(cfg.Wikis) == 0 {
		return nil, fmt.Errorf("at least one wiki is required")
	}

	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Window <= 0 {
		cfg.Window = detection.DefaultWindow
	}
	if cfg.WatchdogInterval <= 0 {
		cfg.WatchdogInterval = DefaultWatchdogInterval
	}
	if cfg.MinBackoff <= 0 {
		cfg.MinBackoff = DefaultMinBackoff
	}
	if cfg.MaxBackoff < cfg.MinBackoff {
		cfg.MaxBackoff = max(DefaultMaxBackoff, cfg.MinBackoff)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}

	return &Ingestor{
		l:       cfg.Logger,
		uc:      cfg.UseCase,
		sub:     cfg.Subscriber,
		metrics: cfg.Metrics,
		cfg:     cfg,
		queue:   make(chan model.Change, cfg.QueueSize),
		now:     time.Now,
	}, nil
}

// LastEventID returns the id of the last event read from the stream.
func (i *Ingestor) LastEventID() string {
	i.cursorMu.Lock()
	defer i.cursorMu.Unlock()
	return i.lastEventID
}

func (i *Ingestor) setLastEventID(id string) {
	i.cursorMu.Lock()
	i.lastEventID = id
	i.cursorMu.Unlock()
}
