package valueobject

import (
	"fmt"
	"math"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
)

// Span is the visible extent of a region in degrees. Both deltas must be
// strictly positive.
type Span struct {
	LatitudeDelta  float64
	LongitudeDelta float64
}

func NewSpan(latDelta, lngDelta float64) Span {
	return Span{
		LatitudeDelta:  latDelta,
		LongitudeDelta: lngDelta,
	}
}

func (s Span) IsValid() bool {
	if math.IsNaN(s.LatitudeDelta) || math.IsNaN(s.LongitudeDelta) {
		return false
	}
	return s.LatitudeDelta > 0 && s.LatitudeDelta <= 180 &&
		s.LongitudeDelta > 0 && s.LongitudeDelta <= 360
}

type MapRegion struct {
	Center Coordinate
	Span   Span
}

// NewMapRegion builds a region, rejecting degenerate spans and out of range
// centers.
func NewMapRegion(center Coordinate, span Span) (MapRegion, error) {
	r := MapRegion{Center: center, Span: span}
	if err := r.Validate(); err != nil {
		return MapRegion{}, err
	}
	return r, nil
}

func (r MapRegion) Validate() error {
	if !r.Center.IsValid() {
		return fmt.Errorf("%w: center %.6f,%.6f out of range", domain.ErrInvalidRegion, r.Center.Latitude, r.Center.Longitude)
	}
	if !r.Span.IsValid() {
		return fmt.Errorf("%w: span %gx%g must be positive", domain.ErrInvalidRegion, r.Span.LatitudeDelta, r.Span.LongitudeDelta)
	}
	return nil
}

// BoundingBox returns the area covered by the region, clamped to valid
// geographic bounds.
func (r MapRegion) BoundingBox() *BoundingBox {
	halfLat := r.Span.LatitudeDelta / 2
	halfLng := r.Span.LongitudeDelta / 2
	return NewBoundingBox(
		math.Max(r.Center.Latitude-halfLat, -90),
		math.Min(r.Center.Latitude+halfLat, 90),
		math.Max(r.Center.Longitude-halfLng, -180),
		math.Min(r.Center.Longitude+halfLng, 180),
	)
}

// RegionEnclosing returns the smallest region containing every coordinate,
// grown by padding (0.2 adds 20%) and never smaller than minSpan.
func RegionEnclosing(coords []Coordinate, padding float64, minSpan Span) (MapRegion, error) {
	if len(coords) == 0 {
		return MapRegion{}, fmt.Errorf("%w: no coordinates to enclose", domain.ErrInvalidRegion)
	}

	minLat, maxLat := coords[0].Latitude, coords[0].Latitude
	minLng, maxLng := coords[0].Longitude, coords[0].Longitude
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Latitude)
		maxLat = math.Max(maxLat, c.Latitude)
		minLng = math.Min(minLng, c.Longitude)
		maxLng = math.Max(maxLng, c.Longitude)
	}

	span := NewSpan(
		math.Min(math.Max((maxLat-minLat)*(1+padding), minSpan.LatitudeDelta), 180),
		math.Min(math.Max((maxLng-minLng)*(1+padding), minSpan.LongitudeDelta), 360),
	)
	center := NewCoordinate((minLat+maxLat)/2, (minLng+maxLng)/2)

	return NewMapRegion(center, span)
}
