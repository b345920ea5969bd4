package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/httputil"
)

type ScreenHandler struct {
	navigator Navigator
}

func NewScreenHandler(navigator Navigator) *ScreenHandler {
	return &ScreenHandler{navigator: navigator}
}

func (h *ScreenHandler) Get(c *gin.Context) {
	httputil.OK(c, response.ScreenFromEntity(h.navigator.Current()))
}

func (h *ScreenHandler) Navigate(c *gin.Context) {
	var req request.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	screen, err := h.navigator.Navigate(c.Request.Context(), req.Screen)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ScreenFromEntity(screen))
}
