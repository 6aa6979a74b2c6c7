package api

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type EventBroker interface {
	Subscribe(deliveryID string) chan Event
	Unsubscribe(deliveryID string, ch chan Event)
	Publish(deliveryID string, evt Event)
}

// In-memory broker in broker.go satisfies EventBroker.

// RedisBroker implements EventBroker over Redis Pub/Sub so events reach
// subscribers on other instances.
type RedisBroker struct {
	rdb *redis.Client

	mu  sync.Mutex
	sub map[chan Event]*redis.PubSub
}

func NewRedisBroker(url string) (*RedisBroker, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisBroker{rdb: redis.NewClient(opt), sub: map[chan Event]*redis.PubSub{}}, nil
}

func (b *RedisBroker) Subscribe(deliveryID string) chan Event {
	ch := make(chan Event, 16)
	ctx := context.Background()
	ps := b.rdb.Subscribe(ctx, b.chanName(deliveryID))
	// initial consume to ensure subscription
	_, _ = ps.Receive(ctx)
	b.mu.Lock()
	b.sub[ch] = ps
	b.mu.Unlock()
	go func() {
		defer close(ch)
		for msg := range ps.Channel() {
			var evt Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err == nil {
				select {
				case ch <- evt:
				default:
				}
			}
		}
	}()
	return ch
}

func (b *RedisBroker) Unsubscribe(deliveryID string, ch chan Event) {
	// Closing the pubsub ends the reader goroutine, which closes ch.
	b.mu.Lock()
	ps := b.sub[ch]
	delete(b.sub, ch)
	b.mu.Unlock()
	if ps != nil {
		_ = ps.Close()
	}
}

func (b *RedisBroker) Publish(deliveryID string, evt Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, _ := json.Marshal(evt)
	_ = b.rdb.Publish(ctx, b.chanName(deliveryID), data).Err()
}

func (b *RedisBroker) chanName(deliveryID string) string { return "delivery:" + deliveryID }
