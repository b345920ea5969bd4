package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
)

type StationHandler struct {
	stationSvc StationService
}

func NewStationHandler(stationSvc StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

// List godoc
//
//	@Summary		List charging stations
//	@Description	Paginated station catalogue, optionally limited to the visible map region
//	@Tags			stations
//	@Produce		json
//	@Param			page		query		int		false	"Page number"
//	@Param			per_page	query		int		false	"Items per page"
//	@Param			in_view		query		bool	false	"Only stations inside the current region"
//	@Success		200			{object}	response.StationsListResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Router			/stations [get]
func (h *StationHandler) List(c *gin.Context) {
	var req request.ListStationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	stations, pageInfo, err := h.stationSvc.List(c.Request.Context(), station.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
		InView:  req.InView,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.StationsListResponse{
		Stations:   response.StationsFromEntities(stations),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

// Get godoc
//
//	@Summary	Get a charging station
//	@Tags		stations
//	@Produce	json
//	@Param		id	path		string	true	"Station ID"
//	@Success	200	{object}	response.StationResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/stations/{id} [get]
func (h *StationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid station id")
		return
	}

	st, err := h.stationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.StationFromEntity(st))
}

// Nearest godoc
//
//	@Summary		Nearest charging stations
//	@Description	Stations ordered by distance from lat/lng, or from the device location when omitted
//	@Tags			stations
//	@Produce		json
//	@Param			lat		query		number	false	"Origin latitude"
//	@Param			lng		query		number	false	"Origin longitude"
//	@Param			limit	query		int		false	"Maximum results"
//	@Success		200		{object}	response.NearestStationsResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"Location unavailable"
//	@Router			/stations/nearest [get]
func (h *StationHandler) Nearest(c *gin.Context) {
	var req request.NearestStationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_COORDINATE", "lat and lng must be given together")
		return
	}

	input := station.NearestInput{Limit: req.Limit}
	if req.Latitude != nil {
		from := valueobject.NewCoordinate(*req.Latitude, *req.Longitude)
		input.From = &from
	}

	nearby, err := h.stationSvc.Nearest(c.Request.Context(), input)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.NearestStationsResponse{Stations: response.NearbyFromResult(nearby)})
}
