// Package refresh carries data-change notifications between otherwise
// unrelated components: a publisher never knows who is listening.
package refresh

import "sync"

// Message is the single shape carried on the bus. Consumers that only care
// about cache invalidation check Refresh themselves; the bus does not filter.
type Message struct {
	Refresh bool
}

type Handler func(Message)

// Bus is an in-process broadcast channel. Fan-out order across subscribers
// is unspecified and must not be relied upon.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers handler for every subsequently published message.
// The returned subscription must be cancelled when the consumer is torn
// down so handlers are not invoked on a disposed component.
func (b *Bus) Subscribe(handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = handler
	return &Subscription{bus: b, id: id}
}

// Publish delivers msg to every currently registered subscriber.
func (b *Bus) Publish(msg Message) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, handler := range b.subs {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	// Handlers run outside the lock so a handler may subscribe or cancel.
	for _, handler := range handlers {
		handler(msg)
	}
}

type Subscription struct {
	bus  *Bus
	once sync.Once
	id   int
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
	})
}
