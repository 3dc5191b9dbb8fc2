// Package bus is the in-process metrics event bus: non-durable multicast
// pub/sub over two logical channels, one project-scoped and one
// dashboard-wide. Publish never blocks; events a subscriber cannot keep up
// with are dropped for that subscriber, and nothing is replayed.
package bus

import (
	"sync"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

type Channel string

const (
	ChannelProject   Channel = "project"
	ChannelDashboard Channel = "dashboard"
)

const defaultBufferSize = 16

type Options struct {
	// BufferSize is the per-subscriber event buffer. Zero means the default.
	BufferSize int
}

// Bus holds the subscriber registry. Create one at process start, inject it
// where needed, and Close it at shutdown.
type Bus struct {
	bufferSize int

	mu          sync.Mutex
	closed      bool
	nextID      int
	subscribers map[Channel]map[int]chan domain.MetricsUpdateEvent
}

func New(opts Options) *Bus {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Bus{
		bufferSize: size,
		subscribers: map[Channel]map[int]chan domain.MetricsUpdateEvent{
			ChannelProject:   {},
			ChannelDashboard: {},
		},
	}
}

// Subscription is a live event feed. Close it when done consuming; Events
// is closed by either Close or the bus shutting down.
type Subscription struct {
	events chan domain.MetricsUpdateEvent
	once   sync.Once
	remove func()
}

func (s *Subscription) Events() <-chan domain.MetricsUpdateEvent {
	return s.events
}

func (s *Subscription) Close() {
	s.once.Do(s.remove)
}

// Publish routes the event to its channel: dashboard-kind events to the
// dashboard channel, project and sprint kinds to the project channel. It is
// fire-and-forget; with no live subscribers the event is lost.
func (b *Bus) Publish(event domain.MetricsUpdateEvent) {
	channel := ChannelProject
	if event.Kind == domain.EventKindDashboard {
		channel = ChannelDashboard
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	for _, ch := range b.subscribers[channel] {
		select {
		case ch <- event:
		default:
			// Slow subscriber: drop rather than block the publisher.
		}
	}
}

// SubscribeProject returns a feed of all project-scoped events. The project
// id is accepted for forward compatibility but does not filter the stream;
// every subscriber observes every project's events.
func (b *Bus) SubscribeProject(_ string) *Subscription {
	return b.subscribe(ChannelProject)
}

func (b *Bus) SubscribeDashboard() *Subscription {
	return b.subscribe(ChannelDashboard)
}

func (b *Bus) subscribe(channel Channel) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := make(chan domain.MetricsUpdateEvent, b.bufferSize)
	if b.closed {
		close(events)
		return &Subscription{events: events, remove: func() {}}
	}

	b.nextID++
	id := b.nextID
	b.subscribers[channel][id] = events

	return &Subscription{
		events: events,
		remove: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subscribers[channel][id]; ok {
				delete(b.subscribers[channel], id)
				close(events)
			}
		},
	}
}

// Close tears down all subscriptions. Publishing after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subscribers {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
	}
}
