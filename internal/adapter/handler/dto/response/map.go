package response

import (
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
)

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RegionResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

type ViewportResponse struct {
	Region     RegionResponse `json:"region"`
	Overridden bool           `json:"overridden"`
}

type LocationResponse struct {
	Status   string              `json:"status"`
	Location *CoordinateResponse `json:"location"`
}

type StatusEvent struct {
	Status string `json:"status"`
}

type ScreenResponse struct {
	Screen string `json:"screen"`
}

type AcceptedFixesResponse struct {
	Accepted int `json:"accepted"`
}

func RegionFromValue(r valueobject.MapRegion) RegionResponse {
	return RegionResponse{
		Latitude:       r.Center.Latitude,
		Longitude:      r.Center.Longitude,
		LatitudeDelta:  r.Span.LatitudeDelta,
		LongitudeDelta: r.Span.LongitudeDelta,
	}
}

func LocationFromStatus(status location.Status, coord valueobject.Coordinate, known bool) LocationResponse {
	resp := LocationResponse{Status: status.String()}
	if known {
		resp.Location = &CoordinateResponse{Latitude: coord.Latitude, Longitude: coord.Longitude}
	}
	return resp
}

func ScreenFromEntity(s entity.Screen) ScreenResponse {
	return ScreenResponse{Screen: s.String()}
}

// EventPayload converts a published value to its wire form.
func EventPayload(data any) any {
	switch v := data.(type) {
	case valueobject.MapRegion:
		return RegionFromValue(v)
	case location.Status:
		return StatusEvent{Status: v.String()}
	default:
		return v
	}
}
