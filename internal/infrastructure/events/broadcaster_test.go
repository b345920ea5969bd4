package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/events"
)

func TestBroadcaster_Publish(t *testing.T) {
	b := events.NewBroadcaster(zap.NewNop())
	_, first := b.Subscribe()
	_, second := b.Subscribe()

	b.Publish(events.EventStatus, "tracking")
	b.Publish(events.EventRegion, map[string]float64{"latitude": 41.02})

	for _, ch := range []<-chan events.Message{first, second} {
		msg := <-ch
		assert.Equal(t, events.EventStatus, msg.Event)
		assert.Equal(t, "tracking", msg.Data)
		assert.Equal(t, uint64(1), msg.ID)

		msg = <-ch
		assert.Equal(t, events.EventRegion, msg.Event)
		assert.Equal(t, uint64(2), msg.ID)
	}
}

func TestBroadcaster_SlowClientDoesNotBlock(t *testing.T) {
	b := events.NewBroadcaster(zap.NewNop())
	_, ch := b.Subscribe()

	for i := 0; i < 100; i++ {
		b.Publish(events.EventStatus, i)
	}

	first := <-ch
	assert.Equal(t, 0, first.Data)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := events.NewBroadcaster(zap.NewNop())
	id, ch := b.Subscribe()
	require.Equal(t, 1, b.ClientCount())

	b.Unsubscribe(id)
	b.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, b.ClientCount())
}

func TestBroadcaster_Close(t *testing.T) {
	b := events.NewBroadcaster(zap.NewNop())
	_, ch := b.Subscribe()

	b.Close()
	b.Close()
	b.Publish(events.EventStatus, "stopped")

	_, open := <-ch
	assert.False(t, open)

	_, late := b.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
