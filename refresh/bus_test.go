package refresh

import "testing"

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	first := 0
	second := 0
	bus.Subscribe(func(msg Message) {
		if msg.Refresh {
			first++
		}
	})
	bus.Subscribe(func(msg Message) {
		if msg.Refresh {
			second++
		}
	})

	bus.Publish(Message{Refresh: true})

	if first != 1 || second != 1 {
		t.Fatalf("expected both subscribers to receive the message, got %d and %d", first, second)
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	received := 0
	sub := bus.Subscribe(func(Message) { received++ })

	bus.Publish(Message{Refresh: true})
	sub.Cancel()
	sub.Cancel() // repeated cancel is a no-op
	bus.Publish(Message{Refresh: true})

	if received != 1 {
		t.Fatalf("expected 1 delivery before cancel, got %d", received)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.Publish(Message{Refresh: true})
}

func TestBus_NonRefreshMessagesAreDelivered(t *testing.T) {
	t.Parallel()

	// Filtering is the subscriber's job, not the bus's.
	bus := NewBus()
	var got []Message
	bus.Subscribe(func(msg Message) { got = append(got, msg) })

	bus.Publish(Message{Refresh: false})
	bus.Publish(Message{Refresh: true})

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	if got[0].Refresh || !got[1].Refresh {
		t.Fatalf("unexpected message order/content: %v", got)
	}
}

func TestBus_SubscribeDuringPublishDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.Subscribe(func(Message) {
		bus.Subscribe(func(Message) {})
	})
	bus.Publish(Message{Refresh: true})
}
