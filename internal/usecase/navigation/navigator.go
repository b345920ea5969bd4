package navigation

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
)

// Tracking is the part of the map session whose lifetime follows the map
// screen.
type Tracking interface {
	StartTracking(ctx context.Context) error
	StopTracking()
}

// Navigator keeps the active tab. Location tracking runs only while the map
// tab is shown.
type Navigator struct {
	tracking Tracking
	logger   *zap.Logger

	mu      sync.Mutex
	current entity.Screen
}

func NewNavigator(tracking Tracking, logger *zap.Logger) *Navigator {
	return &Navigator{
		tracking: tracking,
		logger:   logger.With(zap.String("component", "navigation")),
		current:  entity.ScreenHome,
	}
}

func (n *Navigator) Current() entity.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate switches to the named screen. A tracking failure on entering the
// map is logged and surfaces through the tracker status, not as an error.
func (n *Navigator) Navigate(ctx context.Context, name string) (entity.Screen, error) {
	next, err := entity.ParseScreen(name)
	if err != nil {
		return "", err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	prev := n.current
	if prev == next {
		return next, nil
	}
	n.current = next

	switch {
	case next == entity.ScreenMap:
		if err := n.tracking.StartTracking(ctx); err != nil {
			if errors.Is(err, domain.ErrPermissionDenied) {
				n.logger.Warn("map shown without location", zap.Error(err))
			} else {
				n.logger.Error("starting location tracking", zap.Error(err))
			}
		}
	case prev == entity.ScreenMap:
		n.tracking.StopTracking()
	}

	n.logger.Info("navigated", zap.Stringer("from", prev), zap.Stringer("to", next))
	return next, nil
}
