package request

import "time"

// FixRequest is one platform reading. Out of range coordinates are accepted
// here and dropped by the tracker.
type FixRequest struct {
	Latitude  *float64  `json:"latitude" binding:"required"`
	Longitude *float64  `json:"longitude" binding:"required"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  *float64  `json:"accuracy" binding:"omitempty,min=0"`
}

type PushFixesRequest struct {
	Fixes []FixRequest `json:"fixes" binding:"required,min=1,max=100,dive"`
}
