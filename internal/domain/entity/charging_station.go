package entity

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
)

// stationNamespace scopes station ids so that every store derives the same
// id for the same station name.
var stationNamespace = uuid.MustParse("5b1e0f7c-9a43-4c1f-8e2d-2f6a4b7c9d10")

type ChargingStation struct {
	ID         uuid.UUID
	Name       string
	Coordinate valueobject.Coordinate
}

func NewChargingStation(name string, coord valueobject.Coordinate) ChargingStation {
	return ChargingStation{
		ID:         uuid.NewSHA1(stationNamespace, []byte(name)),
		Name:       name,
		Coordinate: coord,
	}
}

// DefaultStations is the catalogue shown on the map.
func DefaultStations() []ChargingStation {
	return []ChargingStation{
		NewChargingStation("İstasyon 1", valueobject.NewCoordinate(40.002750, 28.9784)),
		NewChargingStation("İstasyon 2", valueobject.NewCoordinate(41.0150, 28.9800)),
		NewChargingStation("İstasyon 3", valueobject.NewCoordinate(41.0200, 28.9750)),
	}
}
