// Package delivery carries committed engine events out to subscribers.
package delivery

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/setup/config"
)

// EventStream is the Redis stream every committed event is appended to.
const EventStream = "blogchain:events"

// KindCounterPrefix namespaces the per-kind event counters.
// Keys are formatted as "blogchain:events_count:{kind}".
const KindCounterPrefix = "blogchain:events_count:"

// NewRedisClient connects to the Redis endpoint configured for the host.
func NewRedisClient(cfg *config.Redis) (rueidis.Client, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Username:    cfg.Username,
		Password:    cfg.Password,
		ClientName:  "blogchain",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}

	return client, nil
}

// RedisPublisher appends events to a Redis stream and keeps per-kind
// counters. Emit never fails the operation that produced the events;
// delivery errors are logged and dropped.
type RedisPublisher struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewRedisPublisher creates a publisher over an established client.
func NewRedisPublisher(client rueidis.Client, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		logger: logger.Named("redis_publisher"),
	}
}

// Emit appends the events to the stream in order, then bumps the per-kind
// counters.
func (p *RedisPublisher) Emit(ctx context.Context, events []types.Event) {
	for _, event := range events {
		payload, err := sonic.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal event",
				zap.String("kind", string(event.Kind)),
				zap.Error(err))
			continue
		}

		err = p.client.Do(ctx, p.client.B().Xadd().
			Key(EventStream).
			Id("*").
			FieldValue().
			FieldValue("kind", string(event.Kind)).
			FieldValue("payload", string(payload)).
			Build()).Error()
		if err != nil {
			p.logger.Error("Failed to publish event",
				zap.String("kind", string(event.Kind)),
				zap.Error(err))
			continue
		}

		err = p.client.Do(ctx, p.client.B().Incr().
			Key(KindCounterPrefix + string(event.Kind)).
			Build()).Error()
		if err != nil {
			p.logger.Warn("Failed to bump event counter",
				zap.String("kind", string(event.Kind)),
				zap.Error(err))
		}
	}
}

// KindCount returns how many events of the kind have been published.
func (p *RedisPublisher) KindCount(ctx context.Context, kind types.EventKind) (int64, error) {
	count, err := p.client.Do(ctx, p.client.B().Get().
		Key(KindCounterPrefix + string(kind)).
		Build()).ToInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read event counter: %w", err)
	}

	return count, nil
}
