package tabler

// Events emitted by the engine itself. Hosts and plugins are free to emit
// their own event names through the same [Emitter].
const (
	// EventDestroy fires at the start of [Table.Destroy], before the
	// table's subscriptions are dropped. Listeners receive the table.
	EventDestroy = "destroy"
)

// Listener receives the arguments passed to [Emitter.Emit].
type Listener func(args ...any)

// Handle identifies a subscription made with [Emitter.On].
type Handle uint64

type subscription struct {
	handle Handle
	fn     Listener
}

// Emitter is a minimal publish/subscribe registry. Listeners run
// synchronously, in subscription order. The zero value is ready to use.
// An Emitter is not safe for concurrent use.
type Emitter struct {
	next   Handle
	events map[string][]subscription
}

// On subscribes fn to event and returns the handle needed to unsubscribe.
func (e *Emitter) On(event string, fn Listener) Handle {
	if e.events == nil {
		e.events = make(map[string][]subscription)
	}
	e.next++
	e.events[event] = append(e.events[event], subscription{handle: e.next, fn: fn})
	return e.next
}

// Off removes the subscription h from event. Unknown events or handles are
// ignored.
func (e *Emitter) Off(event string, h Handle) {
	subs, ok := e.events[event]
	if !ok {
		return
	}
	for i, sub := range subs {
		if sub.handle != h {
			continue
		}
		// Copy instead of splicing in place: an Emit in progress holds the old slice.
		rest := make([]subscription, 0, len(subs)-1)
		rest = append(rest, subs[:i]...)
		rest = append(rest, subs[i+1:]...)
		if len(rest) == 0 {
			delete(e.events, event)
		} else {
			e.events[event] = rest
		}
		return
	}
}

// Emit calls every listener of event with args. Listeners added or removed
// while emitting take effect from the next Emit.
func (e *Emitter) Emit(event string, args ...any) {
	for _, sub := range e.events[event] {
		sub.fn(args...)
	}
}

// Listeners returns the number of listeners subscribed to event.
func (e *Emitter) Listeners(event string) int {
	return len(e.events[event])
}

// Clear drops every subscription.
func (e *Emitter) Clear() {
	e.events = nil
}
