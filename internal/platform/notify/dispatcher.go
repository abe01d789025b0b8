package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
	"github.com/SscSPs/greenpages_backend/pkg/database"
)

const (
	defaultBufferSize     = 256
	defaultPublishTimeout = 2 * time.Second
)

// Publisher is the subset of the go-redis client used to publish events.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
}

// RedisDispatcher publishes renewal events as JSON on a Redis pub/sub channel.
// Publish only enqueues; a single worker goroutine delivers in order.
type RedisDispatcher struct {
	client  Publisher
	channel string
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex // guards closed and the send side of events
	closed bool
	events chan domain.RenewalEvent
	wg     sync.WaitGroup
}

var _ portssvc.NotificationDispatcher = (*RedisDispatcher)(nil)

// NewRedisDispatcher starts the delivery worker. Call Close to flush and stop it.
func NewRedisDispatcher(client Publisher, channel string, logger *slog.Logger) *RedisDispatcher {
	d := &RedisDispatcher{
		client:  client,
		channel: channel,
		logger:  logger.With(slog.String("component", "notify"), slog.String("channel", channel)),
		timeout: defaultPublishTimeout,
		events:  make(chan domain.RenewalEvent, defaultBufferSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Publish enqueues event for delivery. A full buffer or a closed dispatcher
// drops the event.
func (d *RedisDispatcher) Publish(ctx context.Context, event domain.RenewalEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		middleware.GetLoggerFromCtx(ctx).Warn("Notification dispatcher closed, dropping event",
			slog.String("event_type", string(event.Type)),
			slog.String("renewal_id", event.RenewalID))
		return
	}
	select {
	case d.events <- event:
	default:
		middleware.GetLoggerFromCtx(ctx).Warn("Notification buffer full, dropping event",
			slog.String("event_type", string(event.Type)),
			slog.String("renewal_id", event.RenewalID))
	}
}

// Close stops accepting events and waits for the queued ones to be delivered.
func (d *RedisDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *RedisDispatcher) run() {
	defer d.wg.Done()
	for event := range d.events {
		d.deliver(event)
	}
}

func (d *RedisDispatcher) deliver(event domain.RenewalEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("Failed to encode renewal event", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.client.Publish(ctx, d.channel, payload).Err(); err != nil {
		d.logger.Error("Failed to publish renewal event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)),
			slog.String("renewal_id", event.RenewalID))
	}
}

// LogDispatcher writes events to the log. It is used when Redis is not configured.
type LogDispatcher struct {
	logger *slog.Logger
}

var _ portssvc.NotificationDispatcher = (*LogDispatcher)(nil)

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Publish logs event at info level.
func (d *LogDispatcher) Publish(ctx context.Context, event domain.RenewalEvent) {
	d.logger.InfoContext(ctx, "Renewal event",
		slog.String("event_type", string(event.Type)),
		slog.String("renewal_id", event.RenewalID),
		slog.String("business_id", event.BusinessID),
		slog.String("actor_id", event.ActorID))
}

// NewDispatcher returns a RedisDispatcher when redisURL is set and a
// LogDispatcher otherwise. The returned stop func flushes pending events and
// closes the Redis connection.
func NewDispatcher(ctx context.Context, redisURL, channel string, logger *slog.Logger) (portssvc.NotificationDispatcher, func(), error) {
	if redisURL == "" {
		logger.Info("REDIS_URL not set, renewal events will only be logged")
		return NewLogDispatcher(logger), func() {}, nil
	}

	client, err := database.NewRedisClient(ctx, redisURL, defaultPublishTimeout)
	if err != nil {
		return nil, nil, err
	}
	d := NewRedisDispatcher(client, channel, logger)
	stop := func() {
		d.Close()
		if err := client.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	return d, stop, nil
}
