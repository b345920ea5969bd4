package dispatch_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
)

func TestQueue_RunsTasksInOrder(t *testing.T) {
	q := dispatch.NewQueue(zap.NewNop())
	defer q.Close()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		require.True(t, q.Async(func() { got = append(got, i) }))
	}
	q.Sync(func() {})

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueue_NeverRunsTasksConcurrently(t *testing.T) {
	q := dispatch.NewQueue(zap.NewNop())
	defer q.Close()

	var (
		running int
		overlap bool
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Async(func() {
					running++
					if running > 1 {
						overlap = true
					}
					running--
				})
			}
		}()
	}
	wg.Wait()
	q.Sync(func() {})

	assert.False(t, overlap)
}

func TestQueue_SurvivesPanickingTask(t *testing.T) {
	q := dispatch.NewQueue(zap.NewNop())
	defer q.Close()

	q.Async(func() { panic("boom") })

	ran := false
	q.Sync(func() { ran = true })

	assert.True(t, ran)
}

func TestQueue_Close(t *testing.T) {
	t.Run("drains pending tasks", func(t *testing.T) {
		q := dispatch.NewQueue(zap.NewNop())

		count := 0
		for i := 0; i < 10; i++ {
			q.Async(func() { count++ })
		}
		q.Close()

		assert.Equal(t, 10, count)
	})

	t.Run("rejects tasks after close", func(t *testing.T) {
		q := dispatch.NewQueue(zap.NewNop())
		q.Close()

		assert.False(t, q.Async(func() {}))
		assert.False(t, q.Sync(func() {}))
	})

	t.Run("is idempotent", func(t *testing.T) {
		q := dispatch.NewQueue(zap.NewNop())
		q.Close()
		q.Close()
	})
}
