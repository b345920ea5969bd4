package entity

import (
	"time"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
)

// Fix is a single position reported by the platform location service.
type Fix struct {
	Coordinate valueobject.Coordinate
	Timestamp  time.Time
	Accuracy   *float64
}

func NewFix(lat, lng float64, ts time.Time) Fix {
	return Fix{
		Coordinate: valueobject.NewCoordinate(lat, lng),
		Timestamp:  ts,
	}
}

// Latest returns the most recent fix of a batch. Platforms deliver batches
// oldest first, so on equal timestamps the later entry wins.
func Latest(batch []Fix) (Fix, bool) {
	if len(batch) == 0 {
		return Fix{}, false
	}
	latest := batch[0]
	for _, f := range batch[1:] {
		if !f.Timestamp.Before(latest.Timestamp) {
			latest = f
		}
	}
	return latest, true
}
