package api

import (
	"sync"
)

// Event is a delivery lifecycle notification pushed to websocket subscribers.
type Event struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Broker fans events out to subscribers per delivery ID.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{} // deliveryId -> set of channels
}

func NewBroker() *Broker {
	return &Broker{subs: map[string]map[chan Event]struct{}{}}
}

func (b *Broker) Subscribe(deliveryID string) chan Event {
	ch := make(chan Event, 8)
	b.mu.Lock()
	if b.subs[deliveryID] == nil {
		b.subs[deliveryID] = map[chan Event]struct{}{}
	}
	b.subs[deliveryID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(deliveryID string, ch chan Event) {
	b.mu.Lock()
	if m := b.subs[deliveryID]; m != nil {
		delete(m, ch)
		if len(m) == 0 {
			delete(b.subs, deliveryID)
		}
	}
	b.mu.Unlock()
	close(ch)
}

// Publish delivers evt to current subscribers; slow consumers are skipped.
func (b *Broker) Publish(deliveryID string, evt Event) {
	b.mu.Lock()
	for ch := range b.subs[deliveryID] {
		select {
		case ch <- evt:
		default:
		}
	}
	b.mu.Unlock()
}
