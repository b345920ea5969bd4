package request

type SetRegionRequest struct {
	Latitude       *float64 `json:"latitude" binding:"required"`
	Longitude      *float64 `json:"longitude" binding:"required"`
	LatitudeDelta  *float64 `json:"latitude_delta" binding:"required"`
	LongitudeDelta *float64 `json:"longitude_delta" binding:"required"`
}

type NavigateRequest struct {
	Screen string `json:"screen" binding:"required"`
}
