// Package eventbus decouples the planning pipeline from its observers: the
// service publishes one event per run and metrics recorders consume them on
// their own goroutine.
package eventbus

import (
	"sync"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
)

// EventBus fans plan events out to subscribers.
type EventBus interface {
	Publish(coremetrics.PlanEvent)
	Subscribe() <-chan coremetrics.PlanEvent
	Unsubscribe(<-chan coremetrics.PlanEvent)
	Close()
}

const subscriberBuffer = 8

// Bus is the default EventBus implementation using fan-out channels.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan coremetrics.PlanEvent
	closed bool
}

// New creates a new Bus.
func New() *Bus { return &Bus{} }

// Publish sends the event to all subscribers. Delivery is non-blocking: a
// subscriber with a full buffer misses the event rather than stalling the
// planning pipeline.
func (b *Bus) Publish(ev coremetrics.PlanEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel.
func (b *Bus) Subscribe() <-chan coremetrics.PlanEvent {
	ch := make(chan coremetrics.PlanEvent, subscriberBuffer)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Bus) Unsubscribe(sub <-chan coremetrics.PlanEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and clears the list.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
