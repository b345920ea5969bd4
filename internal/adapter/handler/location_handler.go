package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/httputil"
)

type LocationHandler struct {
	session MapSession
	// sink is nil unless fixes are pushed over HTTP.
	sink FixSink
}

func NewLocationHandler(session MapSession, sink FixSink) *LocationHandler {
	return &LocationHandler{session: session, sink: sink}
}

func (h *LocationHandler) Get(c *gin.Context) {
	httputil.OK(c, response.LocationFromStatus(h.session.Tracking()))
}

func (h *LocationHandler) Start(c *gin.Context) {
	if err := h.session.StartTracking(c.Request.Context()); err != nil {
		httputil.HandleError(c, err)
		return
	}
	httputil.OK(c, response.LocationFromStatus(h.session.Tracking()))
}

func (h *LocationHandler) Stop(c *gin.Context) {
	h.session.StopTracking()
	httputil.OK(c, response.LocationFromStatus(h.session.Tracking()))
}

// PushFixes hands a batch of readings to the tracker. The response does not
// wait for the batch to be applied.
func (h *LocationHandler) PushFixes(c *gin.Context) {
	if h.sink == nil {
		httputil.ErrorWithCode(c, http.StatusConflict, "PUSH_DISABLED", "location fixes are not accepted over http")
		return
	}

	var req request.PushFixesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	now := time.Now().UTC()
	batch := make([]entity.Fix, 0, len(req.Fixes))
	for _, f := range req.Fixes {
		ts := f.Timestamp
		if ts.IsZero() {
			ts = now
		}
		fix := entity.NewFix(*f.Latitude, *f.Longitude, ts)
		fix.Accuracy = f.Accuracy
		batch = append(batch, fix)
	}

	if err := h.sink.Deliver(c.Request.Context(), batch); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Accepted(c, response.AcceptedFixesResponse{Accepted: len(batch)})
}
