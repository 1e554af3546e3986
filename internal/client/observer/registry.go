// Package observer provides an ordered callback registry with snapshot delivery.
package observer

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Registry holds callbacks in registration order.
type Registry[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry[T]
	logger  *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry[T any](logger *slog.Logger) *Registry[T] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Registry[T]{logger: logger}
}

// Add registers fn and returns a function that removes exactly that registration.
// Calling the returned function more than once has no further effect.
func (r *Registry[T]) Add(fn func(T)) (remove func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[T]{id: id, fn: fn})
	r.mu.Unlock()

	return func() { r.remove(id) }
}

func (r *Registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)

			return
		}
	}
}

// Notify calls every callback registered at the time of the call, in order.
// A panicking callback is logged and does not stop delivery to the rest.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	snapshot := make([]entry[T], len(r.entries))
	copy(snapshot, r.entries)
	r.mu.Unlock()

	for _, e := range snapshot {
		if !r.registered(e.id) {
			continue
		}
		r.invoke(e, v)
	}
}

// registered skips callbacks removed by an earlier callback in the same delivery.
func (r *Registry[T]) registered(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.id == id {
			return true
		}
	}

	return false
}

func (r *Registry[T]) invoke(e entry[T], v T) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Subscriber panicked", slog.Uint64("subscriber", e.id), slog.String("panic", fmt.Sprint(rec)))
		}
	}()

	e.fn(v)
}

// Clear removes every callback.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Len returns the number of registered callbacks.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
