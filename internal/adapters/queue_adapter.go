package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultQueueBuffer is the capacity of each in-memory queue.
const DefaultQueueBuffer = 100

// publishTimeout bounds how long Publish waits on a full queue.
const publishTimeout = 2 * time.Second

// ErrQueueClosed is returned by Publish and StartConsuming after Close.
var ErrQueueClosed = errors.New("queue adapter is closed")

// JobHandler processes one message received from a queue.
type JobHandler func(ctx context.Context, data []byte) error

// QueueAdapter defines the interface for interactions with a queueing system.
type QueueAdapter interface {
	// Publish sends jobData to the named queue.
	Publish(ctx context.Context, queueName string, jobData []byte) error
	// StartConsuming runs handler for every message on the named queue in a
	// background goroutine until StopConsuming, Close or ctx cancellation.
	StartConsuming(ctx context.Context, queueName string, handler JobHandler) error
	// StopConsuming stops the consumer of the named queue.
	StopConsuming(ctx context.Context, queueName string) error
	// Close stops every consumer and waits for them to exit.
	Close() error
}

// InMemoryQueueAdapter implements QueueAdapter with buffered Go channels.
type InMemoryQueueAdapter struct {
	queues      map[string]chan []byte
	stopChan    map[string]chan struct{}
	mu          sync.RWMutex
	logger      zerolog.Logger
	buffer      int
	closed      bool
	wg          sync.WaitGroup
	consumerCtx context.Context
	cancelFunc  context.CancelFunc
}

// NewInMemoryQueueAdapter creates an adapter whose queues hold up to buffer messages.
func NewInMemoryQueueAdapter(logger zerolog.Logger, buffer int) *InMemoryQueueAdapter {
	if buffer <= 0 {
		buffer = DefaultQueueBuffer
	}
	consumerCtx, cancelFunc := context.WithCancel(context.Background())
	return &InMemoryQueueAdapter{
		queues:      make(map[string]chan []byte),
		stopChan:    make(map[string]chan struct{}),
		logger:      logger.With().Str("component", "queue").Logger(),
		buffer:      buffer,
		consumerCtx: consumerCtx,
		cancelFunc:  cancelFunc,
	}
}

func (q *InMemoryQueueAdapter) getOrCreateQueue(queueName string) (chan []byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, ErrQueueClosed
	}
	if _, ok := q.queues[queueName]; !ok {
		q.queues[queueName] = make(chan []byte, q.buffer)
		q.logger.Debug().Str("queue", queueName).Msg("in-memory queue created")
	}
	return q.queues[queueName], nil
}

// Publish enqueues a message, failing if the queue stays full for publishTimeout.
func (q *InMemoryQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	queue, err := q.getOrCreateQueue(queueName)
	if err != nil {
		return err
	}
	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()

	select {
	case queue <- jobData:
		q.logger.Debug().Str("queue", queueName).Int("depth", len(queue)).Msg("message published")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		q.logger.Warn().Str("queue", queueName).Msg("publish timed out, queue full")
		return errors.New("timeout publishing to queue: " + queueName)
	}
}

// StartConsuming starts one consumer goroutine for the named queue.
func (q *InMemoryQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler JobHandler) error {
	queue, err := q.getOrCreateQueue(queueName)
	if err != nil {
		return err
	}

	q.mu.Lock()
	if _, running := q.stopChan[queueName]; running {
		q.mu.Unlock()
		return errors.New("consumer already running for queue: " + queueName)
	}
	stop := make(chan struct{})
	q.stopChan[queueName] = stop
	q.mu.Unlock()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		log := q.logger.With().Str("queue", queueName).Logger()
		log.Info().Msg("consumer started")
		for {
			select {
			case data := <-queue:
				if err := handler(q.consumerCtx, data); err != nil {
					log.Error().Err(err).Msg("failed to process message")
				}
			case <-stop:
				log.Info().Msg("consumer stopped")
				return
			case <-ctx.Done():
				log.Info().Msg("consumer context cancelled")
				return
			case <-q.consumerCtx.Done():
				log.Info().Msg("adapter closed, consumer exiting")
				return
			}
		}
	}()
	return nil
}

// StopConsuming signals the consumer of the named queue to exit. Messages
// already queued stay in the channel for a later consumer.
func (q *InMemoryQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if stop, ok := q.stopChan[queueName]; ok {
		close(stop)
		delete(q.stopChan, queueName)
	}
	return nil
}

// Close cancels every consumer and waits for them to return.
func (q *InMemoryQueueAdapter) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	q.cancelFunc()
	q.wg.Wait()
	return nil
}
