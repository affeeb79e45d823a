package backend

import (
	"context"
	"sync"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// eventBuffer bounds the per-subscriber queue; tests never come close.
const eventBuffer = 32

// MemoryEventBus is an in-process ports.AuthEventBus with per-principal
// fan-out and in-order delivery per subscriber.
type MemoryEventBus struct {
	mu   sync.Mutex
	subs map[string][]*memorySubscription
}

// NewMemoryEventBus creates an empty bus.
func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{subs: make(map[string][]*memorySubscription)}
}

func (b *MemoryEventBus) Publish(_ context.Context, principalID string, ev domainauth.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[principalID] {
		select {
		case sub.ch <- ev:
		default:
			// Queue full; drop rather than block the publisher.
		}
	}
	return nil
}

func (b *MemoryEventBus) Subscribe(_ context.Context, principalID string) (ports.EventSubscription, error) {
	sub := &memorySubscription{
		bus:         b,
		principalID: principalID,
		ch:          make(chan domainauth.Event, eventBuffer),
	}
	b.mu.Lock()
	b.subs[principalID] = append(b.subs[principalID], sub)
	b.mu.Unlock()
	return sub, nil
}

type memorySubscription struct {
	bus         *MemoryEventBus
	principalID string
	ch          chan domainauth.Event
	once        sync.Once
}

func (s *memorySubscription) Events() <-chan domainauth.Event { return s.ch }

// Unsubscribe is idempotent and safe to call from the consuming goroutine.
func (s *memorySubscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		list := s.bus.subs[s.principalID]
		for i, sub := range list {
			if sub == s {
				s.bus.subs[s.principalID] = append(list[:i], list[i+1:]...)
				break
			}
		}
		// Closing under the bus lock keeps Publish from sending on a closed channel.
		close(s.ch)
		s.bus.mu.Unlock()
	})
}
