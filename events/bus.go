// Package events implements the typed publish/subscribe channel that
// decouples the engine components from each other and from the UI layer.
//
// A Bus is explicitly constructed and injected; its lifetime is scoped to
// one quest attempt. Dispatch is synchronous, same-goroutine, and
// re-entrant: a handler may itself publish, and that publish completes on
// the same call stack before control returns to the outer publisher. The
// bus is not safe for concurrent use from multiple goroutines; the engine
// runs single-threaded inside the host's frame tick.
package events

// Handler processes a single published event
type Handler func(Event)

type subscription struct {
	handler Handler
	once    bool
	fired   bool
	removed bool
}

// Bus is a synchronous publish/subscribe channel
type Bus struct {
	subs map[Type][]*subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[Type][]*subscription)}
}

// Subscribe registers a handler for the given event type and returns a
// cancel function that removes it. Handlers are invoked in registration
// order. A handler registered during a dispatch does not receive the
// event being dispatched.
func (b *Bus) Subscribe(t Type, h Handler) func() {
	return b.add(t, h, false)
}

// SubscribeOnce registers a handler that is removed after its first
// delivery. The returned cancel function removes it early.
func (b *Bus) SubscribeOnce(t Type, h Handler) func() {
	return b.add(t, h, true)
}

func (b *Bus) add(t Type, h Handler, once bool) func() {
	sub := &subscription{handler: h, once: once}
	b.subs[t] = append(b.subs[t], sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		b.compact(t)
	}
}

// Publish synchronously delivers the payload to every handler currently
// registered for t, in registration order. A panicking handler is
// isolated: delivery continues with the remaining handlers.
func (b *Bus) Publish(t Type, payload any) {
	subs := b.subs[t]
	if len(subs) == 0 {
		return
	}
	ev := Event{Type: t, Payload: payload}

	// Snapshot so re-entrant subscribes and cancels cannot perturb this
	// dispatch pass.
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)

	needCompact := false
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		if sub.once {
			if sub.fired {
				continue
			}
			sub.fired = true
			sub.removed = true
			needCompact = true
		}
		invoke(sub.handler, ev)
	}
	if needCompact {
		b.compact(t)
	}
}

// Clear removes every registered handler. Called at attempt teardown so
// no handler from a previous attempt fires during a new one.
func (b *Bus) Clear() {
	for t, subs := range b.subs {
		for _, sub := range subs {
			sub.removed = true
		}
		delete(b.subs, t)
	}
}

// HandlerCount returns the number of live handlers for the given type
func (b *Bus) HandlerCount(t Type) int {
	n := 0
	for _, sub := range b.subs[t] {
		if !sub.removed {
			n++
		}
	}
	return n
}

func (b *Bus) compact(t Type) {
	subs := b.subs[t]
	kept := subs[:0]
	for _, sub := range subs {
		if !sub.removed {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(b.subs, t)
		return
	}
	b.subs[t] = kept
}

// invoke isolates handler panics so one failing subscriber cannot stop
// delivery to the rest.
func invoke(h Handler, ev Event) {
	defer func() {
		_ = recover()
	}()
	h(ev)
}
