package adapters

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueueAdapter_PublishAndConsume(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop(), 10)
	defer q.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{}, 3)

	require.NoError(t, q.StartConsuming(context.Background(), "jobs", func(ctx context.Context, data []byte) error {
		mu.Lock()
		got = append(got, string(data))
		mu.Unlock()
		done <- struct{}{}
		return nil
	}))

	for _, msg := range []string{"a", "b", "c"} {
		require.NoError(t, q.Publish(context.Background(), "jobs", []byte(msg)))
	}
	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for consumer")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestInMemoryQueueAdapter_DoubleStartRejected(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop(), 1)
	defer q.Close()

	noop := func(ctx context.Context, data []byte) error { return nil }
	require.NoError(t, q.StartConsuming(context.Background(), "jobs", noop))
	assert.Error(t, q.StartConsuming(context.Background(), "jobs", noop))

	require.NoError(t, q.StopConsuming(context.Background(), "jobs"))
	assert.NoError(t, q.StartConsuming(context.Background(), "jobs", noop), "restart after stop should succeed")
}

func TestInMemoryQueueAdapter_PublishHonoursContext(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop(), 1)
	defer q.Close()

	require.NoError(t, q.Publish(context.Background(), "full", []byte("x")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.Publish(ctx, "full", []byte("y"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInMemoryQueueAdapter_ClosedAdapterRejectsWork(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop(), 0)
	require.NoError(t, q.StartConsuming(context.Background(), "jobs", func(ctx context.Context, data []byte) error { return nil }))
	require.NoError(t, q.Close())
	require.NoError(t, q.Close(), "Close should be idempotent")

	assert.ErrorIs(t, q.Publish(context.Background(), "jobs", []byte("x")), ErrQueueClosed)
	assert.ErrorIs(t, q.StartConsuming(context.Background(), "other", nil), ErrQueueClosed)
}
