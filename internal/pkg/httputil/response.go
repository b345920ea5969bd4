package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/apperror"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "INTERNAL_ERROR",
		RequestID: GetRequestID(c),
	})
}

// HandleError writes err using its domain mapping. Internal errors are
// attached to the context for the request logger and never echoed.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromDomain(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if appErr.StatusCode == http.StatusInternalServerError {
		InternalError(c)
		return
	}
	ErrorWithCode(c, appErr.StatusCode, appErr.Code, appErr.Message)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
