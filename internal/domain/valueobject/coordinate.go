package valueobject

import "math"

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Latitude:  lat,
		Longitude: lng,
	}
}

func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between c and other.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - c.Latitude) * math.Pi / 180
	dLng := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
