package station

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
)

const (
	DefaultNearestLimit = 5
	MaxNearestLimit     = pagination.MaxPerPage
)

// RegionSource reports the region currently shown on the map.
type RegionSource interface {
	Region() valueobject.MapRegion
}

// LocationSource reports the last known device location.
type LocationSource interface {
	CurrentLocation() (valueobject.Coordinate, bool)
}

type Service struct {
	repo     repository.StationRepository
	region   RegionSource
	location LocationSource
}

func NewService(repo repository.StationRepository, region RegionSource, location LocationSource) *Service {
	return &Service{
		repo:     repo,
		region:   region,
		location: location,
	}
}

type ListInput struct {
	Page    int
	PerPage int
	// InView limits the result to stations inside the current map region.
	InView bool
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.ChargingStation, *pagination.Info, error) {
	params := repository.StationListParams{
		Pagination: pagination.NewParams(input.Page, input.PerPage),
	}
	if input.InView {
		params.BoundingBox = s.region.Region().BoundingBox()
	}

	stations, pageInfo, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing stations: %w", err)
	}

	return stations, pageInfo, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChargingStation, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting station: %w", err)
	}
	return st, nil
}

type NearestInput struct {
	// From defaults to the last known device location.
	From  *valueobject.Coordinate
	Limit int
}

type Nearby struct {
	Station    entity.ChargingStation
	DistanceKm float64
}

// Nearest returns stations ordered by great-circle distance from the origin.
func (s *Service) Nearest(ctx context.Context, input NearestInput) ([]Nearby, error) {
	var origin valueobject.Coordinate
	switch {
	case input.From != nil:
		origin = *input.From
	default:
		loc, ok := s.location.CurrentLocation()
		if !ok {
			return nil, domain.ErrLocationUnavailable
		}
		origin = loc
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: %.6f,%.6f", domain.ErrInvalidCoordinate, origin.Latitude, origin.Longitude)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultNearestLimit
	}
	if limit > MaxNearestLimit {
		limit = MaxNearestLimit
	}

	stations, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stations: %w", err)
	}

	nearby := make([]Nearby, len(stations))
	for i, st := range stations {
		nearby[i] = Nearby{Station: st, DistanceKm: origin.DistanceKm(st.Coordinate)}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}
