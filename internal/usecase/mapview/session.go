// Package mapview joins the location tracker and the viewport controller into
// the map screen's session and publishes its changes to event subscribers.
package mapview

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/viewport"
)

// FocusPadding grows the region enclosing all stations by 20%.
const FocusPadding = 0.2

type Publisher interface {
	Publish(event string, data any)
}

type Session struct {
	tracker    *location.Tracker
	controller *viewport.Controller
	stations   repository.StationRepository
	queue      *dispatch.Queue
	logger     *zap.Logger
}

func NewSession(
	tracker *location.Tracker,
	controller *viewport.Controller,
	stations repository.StationRepository,
	queue *dispatch.Queue,
	publisher Publisher,
	logger *zap.Logger,
) *Session {
	s := &Session{
		tracker:    tracker,
		controller: controller,
		stations:   stations,
		queue:      queue,
		logger:     logger.With(zap.String("component", "mapview")),
	}

	// Tracker observers already run on the queue.
	tracker.OnUpdate(controller.OnLocationChanged)
	tracker.OnStatusChange(func(st location.Status) {
		publisher.Publish(events.EventStatus, st)
	})
	controller.OnRegionChanged(func(r valueobject.MapRegion) {
		publisher.Publish(events.EventRegion, r)
	})

	return s
}

func (s *Session) Region() valueobject.MapRegion {
	return s.controller.CurrentRegion()
}

func (s *Session) Overridden() bool {
	return s.controller.IsOverridden()
}

// SetRegion shows r until the override is released.
func (s *Session) SetRegion(ctx context.Context, r valueobject.MapRegion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if !s.queue.Sync(func() { err = s.controller.SetExplicitRegion(r) }) {
		return dispatch.ErrClosed
	}
	if err != nil {
		return fmt.Errorf("setting region: %w", err)
	}
	return nil
}

// ReleaseOverride resumes following the device and recenters on its last
// known location, if any.
func (s *Session) ReleaseOverride(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok := s.queue.Sync(func() {
		s.controller.ReleaseOverride()
		if loc, known := s.tracker.CurrentLocation(); known {
			s.controller.OnLocationChanged(loc)
		}
	})
	if !ok {
		return dispatch.ErrClosed
	}
	return nil
}

// FocusStations overrides the region with one enclosing every station.
func (s *Session) FocusStations(ctx context.Context) (valueobject.MapRegion, error) {
	stations, err := s.stations.All(ctx)
	if err != nil {
		return valueobject.MapRegion{}, fmt.Errorf("loading stations: %w", err)
	}

	coords := make([]valueobject.Coordinate, len(stations))
	for i, st := range stations {
		coords[i] = st.Coordinate
	}

	region, err := valueobject.RegionEnclosing(coords, FocusPadding, s.controller.DefaultSpan())
	if err != nil {
		return valueobject.MapRegion{}, fmt.Errorf("focusing stations: %w", err)
	}
	if err := s.SetRegion(ctx, region); err != nil {
		return valueobject.MapRegion{}, err
	}

	s.logger.Debug("focused on stations", zap.Int("count", len(stations)))
	return region, nil
}

func (s *Session) StartTracking(ctx context.Context) error {
	return s.tracker.Start(ctx)
}

func (s *Session) StopTracking() {
	s.tracker.Stop()
}

// Tracking reports the tracker status and the last known location.
func (s *Session) Tracking() (location.Status, valueobject.Coordinate, bool) {
	loc, ok := s.tracker.CurrentLocation()
	return s.tracker.Status(), loc, ok
}
