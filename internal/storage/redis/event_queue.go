package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue is a FIFO of sketch events on a redis list.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, ev domain.SketchEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop waits up to timeout for the oldest event. It returns e.ErrQueueEmpty
// when nothing arrived.
func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.SketchEvent, error) {
	var ev domain.SketchEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

func (q *EventQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
