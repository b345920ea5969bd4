package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/httputil"
)

type ViewportHandler struct {
	session MapSession
}

func NewViewportHandler(session MapSession) *ViewportHandler {
	return &ViewportHandler{session: session}
}

func (h *ViewportHandler) Get(c *gin.Context) {
	httputil.OK(c, h.current())
}

func (h *ViewportHandler) Set(c *gin.Context) {
	var req request.SetRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	region := valueobject.MapRegion{
		Center: valueobject.NewCoordinate(*req.Latitude, *req.Longitude),
		Span:   valueobject.NewSpan(*req.LatitudeDelta, *req.LongitudeDelta),
	}
	if err := h.session.SetRegion(c.Request.Context(), region); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, h.current())
}

func (h *ViewportHandler) Release(c *gin.Context) {
	if err := h.session.ReleaseOverride(c.Request.Context()); err != nil {
		httputil.HandleError(c, err)
		return
	}
	httputil.OK(c, h.current())
}

func (h *ViewportHandler) FocusStations(c *gin.Context) {
	if _, err := h.session.FocusStations(c.Request.Context()); err != nil {
		httputil.HandleError(c, err)
		return
	}
	httputil.OK(c, h.current())
}

func (h *ViewportHandler) current() response.ViewportResponse {
	return response.ViewportResponse{
		Region:     response.RegionFromValue(h.session.Region()),
		Overridden: h.session.Overridden(),
	}
}
