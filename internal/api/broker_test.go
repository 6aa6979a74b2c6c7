package api

import (
	"testing"
	"time"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()
	id := "d1"
	ch := b.Subscribe(id)

	evt := Event{Type: "delivery.updated", Data: map[string]any{"id": id, "status": "in_progress"}}
	b.Publish(id, evt)

	select {
	case got := <-ch:
		if got.Type != evt.Type {
			t.Fatalf("got type %s, want %s", got.Type, evt.Type)
		}
		if got.Data["status"] != "in_progress" {
			t.Fatalf("bad payload: %+v", got.Data)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}

	b.Unsubscribe(id, ch)
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after unsubscribe")
	}
}

func TestBrokerIsolatesDeliveries(t *testing.T) {
	b := NewBroker()
	ch1 := b.Subscribe("d1")
	ch2 := b.Subscribe("d2")
	defer b.Unsubscribe("d1", ch1)
	defer b.Unsubscribe("d2", ch2)

	b.Publish("d1", Event{Type: "delivery.created"})

	select {
	case <-ch1:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("subscriber for d1 got nothing")
	}
	select {
	case evt := <-ch2:
		t.Fatalf("d2 subscriber received %+v", evt)
	default:
	}
}

func TestBrokerDropsSlowConsumers(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("d1")
	defer b.Unsubscribe("d1", ch)

	// Fill the buffer and then some; Publish must never block.
	for i := 0; i < 20; i++ {
		b.Publish("d1", Event{Type: "delivery.updated"})
	}
}
