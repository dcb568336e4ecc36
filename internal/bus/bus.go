// Package bus provides the in-process publish/subscribe registry that relays
// events between the interface modules. Delivery is synchronous and in
// subscription order; a handler that panics is contained and logged without
// interrupting the remaining handlers or the publisher.
package bus

import (
	"sync"
	"sync/atomic"

	"ashfall/ui/internal/console"
)

type Handler func(payload any)

type registration struct {
	id uint64
	fn Handler
}

type Bus struct {
	mu       sync.Mutex
	handlers map[string][]registration
	nextID   atomic.Uint64
	console  *console.Console
}

func New(c *console.Console) *Bus {
	if c == nil {
		c = console.New(console.Config{})
	}
	return &Bus{
		handlers: make(map[string][]registration),
		console:  c,
	}
}

// Subscribe registers fn for event and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(event string, fn Handler) func() {
	if fn == nil {
		return func() {}
	}
	id := b.nextID.Add(1)

	b.mu.Lock()
	b.handlers[event] = append(b.handlers[event], registration{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		regs := b.handlers[event]
		for i, reg := range regs {
			if reg.id == id {
				b.handlers[event] = append(regs[:i:i], regs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers payload to every handler subscribed to event at call time.
// Publishing an event nobody listens to is a no-op.
func (b *Bus) Publish(event string, payload any) {
	b.mu.Lock()
	regs := b.handlers[event]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	b.mu.Unlock()

	for _, reg := range snapshot {
		b.deliver(event, reg.fn, payload)
	}
}

func (b *Bus) deliver(event string, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.console.Error("Error in event callback for %s: %v", event, r)
		}
	}()
	fn(payload)
}

func (b *Bus) UnsubscribeAll(event string) {
	b.mu.Lock()
	delete(b.handlers, event)
	b.mu.Unlock()
}

// Reset drops every registration. Only meant for full reinitialization.
func (b *Bus) Reset() {
	b.mu.Lock()
	b.handlers = make(map[string][]registration)
	b.mu.Unlock()
}

func (b *Bus) SubscriberCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[event])
}
