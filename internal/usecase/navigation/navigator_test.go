package navigation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/mocks"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/location"
	"github.com/marcos-nsantos/zapgo-backend/internal/usecase/navigation"
)

// trackerAdapter exposes a Tracker through the Tracking interface.
type trackerAdapter struct{ *location.Tracker }

func (a trackerAdapter) StartTracking(ctx context.Context) error { return a.Start(ctx) }
func (a trackerAdapter) StopTracking()                           { a.Stop() }

func newNavigator(t *testing.T) (*navigation.Navigator, *location.Tracker, *mocks.MockLocationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockLocationService(ctrl)
	queue := dispatch.NewQueue(zap.NewNop())
	t.Cleanup(queue.Close)

	tracker := location.NewTracker(source, queue, zap.NewNop())
	return navigation.NewNavigator(trackerAdapter{tracker}, zap.NewNop()), tracker, source
}

func TestNavigator_Navigate(t *testing.T) {
	t.Run("starts on home", func(t *testing.T) {
		nav, tracker, _ := newNavigator(t)

		assert.Equal(t, entity.ScreenHome, nav.Current())
		assert.Equal(t, location.StatusIdle, tracker.Status())
	})

	t.Run("map starts and leaving stops tracking", func(t *testing.T) {
		nav, tracker, source := newNavigator(t)
		source.EXPECT().RequestPermission(gomock.Any()).Return(nil)
		source.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil)

		got, err := nav.Navigate(context.Background(), "map")
		require.NoError(t, err)
		assert.Equal(t, entity.ScreenMap, got)
		assert.Equal(t, location.StatusAwaitingFix, tracker.Status())

		source.EXPECT().Unsubscribe().Return(nil)
		_, err = nav.Navigate(context.Background(), "zapz")
		require.NoError(t, err)
		assert.Equal(t, entity.ScreenZapz, nav.Current())
		assert.Equal(t, location.StatusStopped, tracker.Status())
	})

	t.Run("same screen is a no-op", func(t *testing.T) {
		nav, _, source := newNavigator(t)
		source.EXPECT().RequestPermission(gomock.Any()).Return(nil).Times(1)
		source.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := nav.Navigate(context.Background(), "map")
		require.NoError(t, err)
		_, err = nav.Navigate(context.Background(), "map")
		require.NoError(t, err)
	})

	t.Run("switching between other tabs leaves tracking alone", func(t *testing.T) {
		nav, tracker, _ := newNavigator(t)

		_, err := nav.Navigate(context.Background(), "services")
		require.NoError(t, err)
		_, err = nav.Navigate(context.Background(), "home")
		require.NoError(t, err)

		assert.Equal(t, location.StatusIdle, tracker.Status())
	})

	t.Run("permission denied still shows the map", func(t *testing.T) {
		nav, tracker, source := newNavigator(t)
		source.EXPECT().RequestPermission(gomock.Any()).Return(domain.ErrPermissionDenied)

		got, err := nav.Navigate(context.Background(), "map")

		require.NoError(t, err)
		assert.Equal(t, entity.ScreenMap, got)
		assert.Equal(t, location.StatusPermissionDenied, tracker.Status())
	})

	t.Run("unknown screen", func(t *testing.T) {
		nav, _, _ := newNavigator(t)

		_, err := nav.Navigate(context.Background(), "settings")

		assert.ErrorIs(t, err, domain.ErrUnknownScreen)
		assert.Equal(t, entity.ScreenHome, nav.Current())
	})
}
