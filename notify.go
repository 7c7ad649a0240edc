package hxwire

import "sync"

// Notification is the structured completion event emitted once per firing,
// success or failure. Verb is the request verb ("get"); Path is the fully
// resolved request path including any harvested query parameters.
type Notification struct {
	Verb string
	Path string
}

// Notifier broadcasts notifications to subscribers. It is a pure fan-out:
// the emitter has no knowledge of, and no dependency on, any listener.
//
// The zero value is not usable; use NewNotifier.
type Notifier struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Notification)
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Notification))}
}

// Subscribe registers fn to receive every subsequent notification and
// returns a cancel function. Subscribers are invoked synchronously on the
// emitting firing's goroutine; slow subscribers delay that firing's
// completion, nobody else's.
func (n *Notifier) Subscribe(fn func(Notification)) (cancel func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Emit broadcasts a notification to all current subscribers.
func (n *Notifier) Emit(verb, path string) {
	note := Notification{Verb: verb, Path: path}

	n.mu.RLock()
	fns := make([]func(Notification), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(note)
	}
}
