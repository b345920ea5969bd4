package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/mocks"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStationHandler_List(t *testing.T) {
	t.Run("lists stations in view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stationSvc := mocks.NewMockStationService(ctrl)
		h := handler.NewStationHandler(stationSvc)

		router := setupRouter()
		router.GET("/stations", h.List)

		stations := entity.DefaultStations()
		stationSvc.EXPECT().List(gomock.Any(), station.ListInput{Page: 2, PerPage: 1, InView: true}).
			Return(stations[1:2], pagination.NewInfo(2, 1, 3), nil)

		req := httptest.NewRequest(http.MethodGet, "/stations?page=2&per_page=1&in_view=true", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		list := resp["stations"].([]any)
		require.Len(t, list, 1)
		assert.Equal(t, stations[1].Name, list[0].(map[string]any)["name"])
		assert.Equal(t, float64(3), resp["pagination"].(map[string]any)["total_items"])
	})

	t.Run("rejects per_page above the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewStationHandler(mocks.NewMockStationService(ctrl))

		router := setupRouter()
		router.GET("/stations", h.List)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations?per_page=500", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["code"])
	})
}

func TestStationHandler_Get(t *testing.T) {
	t.Run("returns the station", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stationSvc := mocks.NewMockStationService(ctrl)
		h := handler.NewStationHandler(stationSvc)

		router := setupRouter()
		router.GET("/stations/:id", h.Get)

		st := entity.DefaultStations()[0]
		stationSvc.EXPECT().GetByID(gomock.Any(), st.ID).Return(&st, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/"+st.ID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, st.ID.String(), resp["id"])
		assert.Equal(t, 40.002750, resp["latitude"])
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stationSvc := mocks.NewMockStationService(ctrl)
		h := handler.NewStationHandler(stationSvc)

		router := setupRouter()
		router.GET("/stations/:id", h.Get)

		id := uuid.New()
		stationSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, domain.ErrStationNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, w)["code"])
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewStationHandler(mocks.NewMockStationService(ctrl))

		router := setupRouter()
		router.GET("/stations/:id", h.Get)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStationHandler_Nearest(t *testing.T) {
	t.Run("uses the given origin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stationSvc := mocks.NewMockStationService(ctrl)
		h := handler.NewStationHandler(stationSvc)

		router := setupRouter()
		router.GET("/stations/nearest", h.Nearest)

		from := valueobject.NewCoordinate(41.02, 28.975)
		st := entity.DefaultStations()[2]
		stationSvc.EXPECT().Nearest(gomock.Any(), station.NearestInput{From: &from, Limit: 2}).
			Return([]station.Nearby{{Station: st, DistanceKm: 0.01}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/nearest?lat=41.02&lng=28.975&limit=2", nil))

		require.Equal(t, http.StatusOK, w.Code)
		list := decode(t, w)["stations"].([]any)
		require.Len(t, list, 1)
		assert.Equal(t, 0.01, list[0].(map[string]any)["distance_km"])
		assert.Equal(t, st.Name, list[0].(map[string]any)["name"])
	})

	t.Run("location unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stationSvc := mocks.NewMockStationService(ctrl)
		h := handler.NewStationHandler(stationSvc)

		router := setupRouter()
		router.GET("/stations/nearest", h.Nearest)

		stationSvc.EXPECT().Nearest(gomock.Any(), station.NearestInput{}).Return(nil, domain.ErrLocationUnavailable)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/nearest", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "LOCATION_UNAVAILABLE", decode(t, w)["code"])
	})

	t.Run("lat without lng", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewStationHandler(mocks.NewMockStationService(ctrl))

		router := setupRouter()
		router.GET("/stations/nearest", h.Nearest)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations/nearest?lat=41", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
