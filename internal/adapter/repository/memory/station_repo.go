package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
)

// StationRepo serves a fixed station list. It is never mutated after
// construction, so reads need no locking.
type StationRepo struct {
	stations []entity.ChargingStation
	byID     map[uuid.UUID]entity.ChargingStation
}

func NewStationRepo(stations []entity.ChargingStation) *StationRepo {
	r := &StationRepo{
		stations: make([]entity.ChargingStation, len(stations)),
		byID:     make(map[uuid.UUID]entity.ChargingStation, len(stations)),
	}
	copy(r.stations, stations)
	for _, s := range stations {
		r.byID[s.ID] = s
	}
	return r
}

func (r *StationRepo) List(ctx context.Context, params repository.StationListParams) ([]entity.ChargingStation, *pagination.Info, error) {
	filtered := r.stations
	if params.BoundingBox != nil {
		filtered = make([]entity.ChargingStation, 0, len(r.stations))
		for _, s := range r.stations {
			if params.BoundingBox.Contains(s.Coordinate) {
				filtered = append(filtered, s)
			}
		}
	}

	page, info := pagination.Slice(filtered, params.Pagination)
	return page, info, nil
}

func (r *StationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChargingStation, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStationNotFound
	}
	return &s, nil
}

func (r *StationRepo) All(ctx context.Context) ([]entity.ChargingStation, error) {
	result := make([]entity.ChargingStation, len(r.stations))
	copy(result, r.stations)
	return result, nil
}
