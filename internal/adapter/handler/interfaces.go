package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type StationService interface {
	List(ctx context.Context, input station.ListInput) ([]entity.ChargingStation, *pagination.Info, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChargingStation, error)
	Nearest(ctx context.Context, input station.NearestInput) ([]station.Nearby, error)
}

type MapSession interface {
	Region() valueobject.MapRegion
	Overridden() bool
	SetRegion(ctx context.Context, r valueobject.MapRegion) error
	ReleaseOverride(ctx context.Context) error
	FocusStations(ctx context.Context) (valueobject.MapRegion, error)
	StartTracking(ctx context.Context) error
	StopTracking()
	Tracking() (location.Status, valueobject.Coordinate, bool)
}

type Navigator interface {
	Current() entity.Screen
	Navigate(ctx context.Context, name string) (entity.Screen, error)
}

// FixSink accepts fix batches posted by the device.
type FixSink interface {
	Deliver(ctx context.Context, batch []entity.Fix) error
}

type EventStream interface {
	Subscribe() (uuid.UUID, <-chan events.Message)
	Unsubscribe(id uuid.UUID)
}
