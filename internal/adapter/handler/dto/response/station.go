package response

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
)

type StationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type NearbyStationResponse struct {
	StationResponse
	DistanceKm float64 `json:"distance_km"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type StationsListResponse struct {
	Stations   []StationResponse  `json:"stations"`
	Pagination PaginationResponse `json:"pagination"`
}

type NearestStationsResponse struct {
	Stations []NearbyStationResponse `json:"stations"`
}

func StationFromEntity(s *entity.ChargingStation) StationResponse {
	return StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Coordinate.Latitude,
		Longitude: s.Coordinate.Longitude,
	}
}

func StationsFromEntities(stations []entity.ChargingStation) []StationResponse {
	result := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		result = append(result, StationFromEntity(&s))
	}
	return result
}

func NearbyFromResult(nearby []station.Nearby) []NearbyStationResponse {
	result := make([]NearbyStationResponse, 0, len(nearby))
	for _, n := range nearby {
		result = append(result, NearbyStationResponse{
			StationResponse: StationFromEntity(&n.Station),
			DistanceKm:      n.DistanceKm,
		})
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
