package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"card-exchange/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventStream is the Redis stream domain events are appended to. Indexers
// and UIs consume it with XREAD.
const EventStream = "cardex:events"

// EventPublisher implements ports.EventPublisher on a Redis stream.
type EventPublisher struct {
	client *goredis.Client
	stream string
}

// NewEventPublisher creates a Redis-backed event publisher.
func NewEventPublisher(client *goredis.Client) *EventPublisher {
	return &EventPublisher{
		client: client,
		stream: EventStream,
	}
}

// Publish appends one event to the stream. The payload is serialized as a
// single JSON field so consumers decode per event type.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	err = p.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"type":        string(event.Type),
			"occurred_at": event.OccurredAt.UnixMilli(),
			"payload":     string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd event: %w", err)
	}
	return nil
}
