package push

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
)

// Source is a LocationService fed by the host device posting fix batches.
type Source struct {
	mu      sync.RWMutex
	handler platform.FixHandler
	granted bool
	logger  *zap.Logger
}

func NewSource(permissionGranted bool, logger *zap.Logger) *Source {
	return &Source{
		granted: permissionGranted,
		logger:  logger.With(zap.String("component", "push_source")),
	}
}

func (s *Source) RequestPermission(ctx context.Context) error {
	if !s.granted {
		s.logger.Warn("location permission denied")
		return domain.ErrPermissionDenied
	}
	return nil
}

func (s *Source) Subscribe(ctx context.Context, handler platform.FixHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = handler
	s.logger.Debug("subscribed")
	return nil
}

func (s *Source) Unsubscribe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = nil
	s.logger.Debug("unsubscribed")
	return nil
}

// Deliver forwards a batch to the current subscriber.
func (s *Source) Deliver(ctx context.Context, batch []entity.Fix) error {
	s.mu.RLock()
	handler := s.handler
	s.mu.RUnlock()

	if handler == nil {
		return domain.ErrNotSubscribed
	}
	if len(batch) == 0 {
		return nil
	}

	handler(batch)
	return nil
}
