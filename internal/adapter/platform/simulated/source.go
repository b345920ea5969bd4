package simulated

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/clock"
)

// DefaultRoute loops through the old town towards the charging stations.
var DefaultRoute = []valueobject.Coordinate{
	valueobject.NewCoordinate(41.0082, 28.9784),
	valueobject.NewCoordinate(41.0105, 28.9790),
	valueobject.NewCoordinate(41.0150, 28.9800),
	valueobject.NewCoordinate(41.0178, 28.9772),
	valueobject.NewCoordinate(41.0200, 28.9750),
	valueobject.NewCoordinate(41.0141, 28.9766),
}

type Config struct {
	Route             []valueobject.Coordinate
	Interval          time.Duration
	BatchSize         int
	PermissionGranted bool
}

// Source replays a route as if it came from a GPS receiver. Each tick
// delivers the next BatchSize waypoints as one batch.
type Source struct {
	cfg    Config
	clock  clock.Clock
	logger *zap.Logger

	mu     sync.Mutex
	next   int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSource(cfg Config, clk clock.Clock, logger *zap.Logger) *Source {
	if len(cfg.Route) == 0 {
		cfg.Route = DefaultRoute
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &Source{
		cfg:    cfg,
		clock:  clk,
		logger: logger.With(zap.String("component", "simulated_source")),
	}
}

func (s *Source) RequestPermission(ctx context.Context) error {
	if !s.cfg.PermissionGranted {
		return domain.ErrPermissionDenied
	}
	return nil
}

func (s *Source) Subscribe(ctx context.Context, handler platform.FixHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.replay(runCtx, handler, s.done)

	s.logger.Info("replaying route",
		zap.Int("waypoints", len(s.cfg.Route)),
		zap.Duration("interval", s.cfg.Interval),
	)
	return nil
}

func (s *Source) Unsubscribe() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (s *Source) replay(ctx context.Context, handler platform.FixHandler, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			handler(s.NextBatch())
		}
	}
}

// NextBatch advances the route and returns the following batch of fixes,
// oldest first.
func (s *Source) NextBatch() []entity.Fix {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	batch := make([]entity.Fix, 0, s.cfg.BatchSize)
	for i := 0; i < s.cfg.BatchSize; i++ {
		c := s.cfg.Route[s.next]
		s.next = (s.next + 1) % len(s.cfg.Route)
		ts := now.Add(-time.Duration(s.cfg.BatchSize-1-i) * time.Millisecond)
		batch = append(batch, entity.NewFix(c.Latitude, c.Longitude, ts))
	}
	return batch
}
