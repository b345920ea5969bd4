package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
)

type Status int

const (
	StatusIdle Status = iota
	StatusAwaitingFix
	StatusTracking
	StatusStopped
	StatusPermissionDenied
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAwaitingFix:
		return "awaiting_fix"
	case StatusTracking:
		return "tracking"
	case StatusStopped:
		return "stopped"
	case StatusPermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

func (s Status) active() bool {
	return s == StatusAwaitingFix || s == StatusTracking
}

type UpdateHandler func(valueobject.Coordinate)

type StatusHandler func(Status)

// Tracker bridges a push-based platform location service to the last known
// coordinate. State changes and observer callbacks run on the dispatch queue.
type Tracker struct {
	source platform.LocationService
	queue  *dispatch.Queue
	logger *zap.Logger

	// lifecycle serializes Start and Stop.
	lifecycle sync.Mutex

	mu              sync.RWMutex
	status          Status
	generation      uint64
	current         *valueobject.Coordinate
	observers       []UpdateHandler
	statusObservers []StatusHandler
}

func NewTracker(source platform.LocationService, queue *dispatch.Queue, logger *zap.Logger) *Tracker {
	return &Tracker{
		source: source,
		queue:  queue,
		logger: logger.With(zap.String("component", "location_tracker")),
	}
}

// Start requests foreground permission and subscribes to position updates.
// It is a no-op while already started. A denied permission is terminal.
func (t *Tracker) Start(ctx context.Context) error {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	switch t.Status() {
	case StatusPermissionDenied:
		return domain.ErrPermissionDenied
	case StatusAwaitingFix, StatusTracking:
		return nil
	}

	if err := t.source.RequestPermission(ctx); err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			t.logger.Warn("location permission denied")
			t.transition(StatusPermissionDenied)
			return domain.ErrPermissionDenied
		}
		return fmt.Errorf("requesting location permission: %w", err)
	}

	prev := t.Status()
	gen := t.transition(StatusAwaitingFix)

	if err := t.source.Subscribe(ctx, t.handlerFor(gen)); err != nil {
		t.transition(prev)
		return fmt.Errorf("subscribing to location updates: %w", err)
	}

	t.logger.Info("location tracking started")
	return nil
}

// Stop ends the platform subscription. Deliveries that were already queued
// are discarded. The last known location stays readable.
func (t *Tracker) Stop() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	if !t.Status().active() {
		return
	}
	t.transition(StatusStopped)

	if err := t.source.Unsubscribe(); err != nil {
		t.logger.Error("unsubscribing from location updates", zap.Error(err))
	}
	t.logger.Info("location tracking stopped")
}

func (t *Tracker) CurrentLocation() (valueobject.Coordinate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.current == nil {
		return valueobject.Coordinate{}, false
	}
	return *t.current, true
}

func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// OnUpdate registers fn to be called with every accepted coordinate.
func (t *Tracker) OnUpdate(fn UpdateHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

// OnStatusChange registers fn to be called on every status transition.
func (t *Tracker) OnStatusChange(fn StatusHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusObservers = append(t.statusObservers, fn)
}

// handlerFor binds platform deliveries to one subscription generation.
func (t *Tracker) handlerFor(gen uint64) platform.FixHandler {
	return func(batch []entity.Fix) {
		fix, ok := entity.Latest(batch)
		if !ok {
			return
		}

		t.mu.RLock()
		current := t.generation == gen && t.status.active()
		t.mu.RUnlock()
		if !current {
			return
		}

		t.queue.Async(func() { t.apply(gen, fix) })
	}
}

// apply runs on the dispatch queue.
func (t *Tracker) apply(gen uint64, fix entity.Fix) {
	if !fix.Coordinate.IsValid() {
		t.logger.Warn("dropping location reading",
			zap.Error(domain.ErrInvalidReading),
			zap.Float64("latitude", fix.Coordinate.Latitude),
			zap.Float64("longitude", fix.Coordinate.Longitude),
		)
		return
	}

	t.mu.Lock()
	if t.generation != gen || !t.status.active() {
		t.mu.Unlock()
		return
	}
	coord := fix.Coordinate
	t.current = &coord
	prev := t.status
	t.status = StatusTracking
	observers := append([]UpdateHandler(nil), t.observers...)
	statusObservers := append([]StatusHandler(nil), t.statusObservers...)
	t.mu.Unlock()

	if prev != StatusTracking {
		for _, fn := range statusObservers {
			fn(StatusTracking)
		}
	}
	for _, fn := range observers {
		fn(coord)
	}
}

// transition moves to status s and starts a new subscription generation, so
// deliveries bound to the previous one are ignored from now on.
func (t *Tracker) transition(s Status) uint64 {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	changed := t.status != s
	t.status = s
	statusObservers := append([]StatusHandler(nil), t.statusObservers...)
	t.mu.Unlock()

	if changed {
		t.queue.Async(func() {
			for _, fn := range statusObservers {
				fn(s)
			}
		})
	}
	return gen
}
