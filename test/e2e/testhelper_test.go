package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/platform/push"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository/memory"
	pgRepo "github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/clock"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/navigation"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/station"
	viewportuc "github.com/marcos-nsantos/zapgo-backend/internal/usecase/viewport"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	apiBasePath    = "/api/v1"
)

type appOptions struct {
	// Postgres backs the station catalogue with a PostGIS container.
	Postgres         bool
	PermissionDenied bool
	OverrideTTL      time.Duration
}

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	Queue      *dispatch.Queue
	Tracker    *location.Tracker
	httpClient *http.Client
}

func setupTestApp(t *testing.T, opts appOptions) *TestApp {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	app := &TestApp{httpClient: &http.Client{Timeout: 10 * time.Second}}

	var stationRepo repository.StationRepository = memory.NewStationRepo(entity.DefaultStations())
	if opts.Postgres {
		stationRepo = app.startPostgres(t)
	}

	queue := dispatch.NewQueue(logger)
	source := push.NewSource(!opts.PermissionDenied, logger)

	defaultRegion, err := valueobject.NewMapRegion(valueobject.NewCoordinate(41.0082, 28.9784), valueobject.NewSpan(0.1, 0.1))
	require.NoError(t, err)
	controller, err := viewportuc.NewController(viewportuc.Config{DefaultRegion: defaultRegion, OverrideTTL: opts.OverrideTTL}, clock.NewReal(), logger)
	require.NoError(t, err)

	tracker := location.NewTracker(source, queue, logger)
	broadcaster := events.NewBroadcaster(logger)
	session := mapview.NewSession(tracker, controller, stationRepo, queue, broadcaster, logger)

	router := server.NewRouter(server.RouterConfig{
		StationHandler:  handler.NewStationHandler(station.NewService(stationRepo, session, tracker)),
		LocationHandler: handler.NewLocationHandler(session, source),
		ViewportHandler: handler.NewViewportHandler(session),
		ScreenHandler:   handler.NewScreenHandler(navigation.NewNavigator(session, logger)),
		EventsHandler:   handler.NewEventsHandler(broadcaster, session),
		Logger:          logger,
		Environment:     "test",
	})

	app.Server = httptest.NewServer(router.Engine())
	app.BaseURL = app.Server.URL
	app.Queue = queue
	app.Tracker = tracker

	t.Cleanup(func() {
		broadcaster.Close()
		app.Server.Close()
		tracker.Stop()
		queue.Close()
		app.cleanup(t)
	})

	return app
}

func (app *TestApp) startPostgres(t *testing.T) repository.StationRepository {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgis/postgis:18-3.6-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	app.Container = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	app.Pool = pool

	require.NoError(t, database.RunMigrations(ctx, pool, getMigrationsPath()))

	repo := pgRepo.NewStationRepo(pool)
	require.NoError(t, repo.Seed(ctx, entity.DefaultStations()))
	return repo
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	if app.Pool != nil {
		app.Pool.Close()
	}
	if app.Container != nil {
		if err := app.Container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

// flush waits until every queued delivery has been applied.
func (app *TestApp) flush() {
	app.Queue.Sync(func() {})
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

func (app *TestApp) put(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPut, path, body)
}

func (app *TestApp) delete(path string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func fix(lat, lng float64) map[string]any {
	return map[string]any{"latitude": lat, "longitude": lng}
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
