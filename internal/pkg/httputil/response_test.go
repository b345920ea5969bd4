package httputil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/httputil"
)

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, httputil.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.Set("request_id", "req-1")
		httputil.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleError(t *testing.T) {
	t.Run("domain error", func(t *testing.T) {
		w, resp := serve(t, fmt.Errorf("starting: %w", domain.ErrPermissionDenied))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "PERMISSION_DENIED", resp.Code)
		assert.Equal(t, "req-1", resp.RequestID)
	})

	t.Run("internal error is not echoed", func(t *testing.T) {
		w, resp := serve(t, errors.New("password=hunter2"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", resp.Code)
		assert.Equal(t, "internal server error", resp.Error)
	})
}
