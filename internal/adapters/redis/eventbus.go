package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const eventChannelPrefix = "auth-events:"

// subscriberBuffer bounds the per-subscription event channel. Controllers
// drain quickly; a full buffer drops the oldest-pending notification rather
// than blocking the pub/sub reader.
const subscriberBuffer = 32

// EventBus propagates auth-state changes over Redis pub/sub, one channel per
// principal. A sign-out on one instance reaches controllers on every instance.
type EventBus struct {
	client redis.UniversalClient
	logger *slog.Logger
}

var _ ports.AuthEventBus = (*EventBus)(nil)

// NewEventBus creates an EventBus on client.
func NewEventBus(client redis.UniversalClient, logger *slog.Logger) *EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventBus{client: client, logger: logger}
}

// Publish sends ev to every subscriber of principalID.
func (b *EventBus) Publish(ctx context.Context, principalID string, ev domainauth.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal auth event: %w", err)
	}
	if err := b.client.Publish(ctx, eventChannelPrefix+principalID, payload).Err(); err != nil {
		return fmt.Errorf("publish auth event: %w", err)
	}
	return nil
}

// Subscribe opens an ordered event stream for principalID. The returned
// subscription must be released with Unsubscribe.
func (b *EventBus) Subscribe(ctx context.Context, principalID string) (ports.EventSubscription, error) {
	pubsub := b.client.Subscribe(ctx, eventChannelPrefix+principalID)
	// Force the subscription handshake so a dead Redis fails here, not later.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe auth events: %w", err)
	}

	sub := &eventSubscription{
		pubsub: pubsub,
		events: make(chan domainauth.Event, subscriberBuffer),
		logger: b.logger,
	}
	go sub.pump()
	return sub, nil
}

type eventSubscription struct {
	pubsub *redis.PubSub
	events chan domainauth.Event
	logger *slog.Logger
	once   sync.Once
}

func (s *eventSubscription) Events() <-chan domainauth.Event {
	return s.events
}

func (s *eventSubscription) Unsubscribe() {
	s.once.Do(func() {
		// Closing the pubsub ends pump's range loop, which closes s.events.
		if err := s.pubsub.Close(); err != nil {
			s.logger.Warn("auth event unsubscribe failed", "error", err)
		}
	})
}

// pump decodes raw pub/sub messages into the typed channel, preserving order.
func (s *eventSubscription) pump() {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		var ev domainauth.Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			s.logger.Warn("dropping malformed auth event", "error", err)
			continue
		}
		s.offer(ev)
	}
}

// offer enqueues ev, evicting the oldest pending event when the buffer is
// full. The newest event always lands; a signed-out must never be the one
// lost to backpressure.
func (s *eventSubscription) offer(ev domainauth.Event) {
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		select {
		case dropped := <-s.events:
			s.logger.Warn("auth event subscriber full, dropping oldest event", "type", dropped.Type)
		default:
		}
	}
}
