package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
)

type EventsHandler struct {
	stream  EventStream
	session MapSession
}

func NewEventsHandler(stream EventStream, session MapSession) *EventsHandler {
	return &EventsHandler{stream: stream, session: session}
}

// Stream sends the current region and status, then every change until the
// client disconnects or the broadcaster closes.
func (h *EventsHandler) Stream(c *gin.Context) {
	id, ch := h.stream.Subscribe()
	defer h.stream.Unsubscribe(id)

	// The server write timeout would otherwise cut long-lived streams.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	status, _, _ := h.session.Tracking()
	c.SSEvent(events.EventRegion, response.RegionFromValue(h.session.Region()))
	c.SSEvent(events.EventStatus, response.EventPayload(status))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent(msg.Event, response.EventPayload(msg.Data))
			c.Writer.Flush()
		}
	}
}
