package request

type ListStationsRequest struct {
	Page    int  `form:"page" binding:"omitempty,min=1"`
	PerPage int  `form:"per_page" binding:"omitempty,min=1,max=100"`
	InView  bool `form:"in_view"`
}

type NearestStationsRequest struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=100"`
}
