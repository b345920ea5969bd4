package domain

import "errors"

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrInvalidReading      = errors.New("invalid location reading")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidRegion       = errors.New("invalid map region")
	ErrInvalidBoundingBox  = errors.New("invalid bounding box")
	ErrStationNotFound     = errors.New("charging station not found")
	ErrUnknownScreen       = errors.New("unknown screen")
	ErrNotSubscribed       = errors.New("no location subscriber")
)
