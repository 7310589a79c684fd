package toast

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Bus fans values out to listeners in registration order. A listener that
// panics is logged and skipped; delivery continues with the next one.
type Bus[T any] struct {
	mu        sync.RWMutex
	next      uint64
	order     []uint64
	listeners map[uint64]func(T)
	clone     func(T) T
	logger    *slog.Logger
}

// NewBus creates a bus. clone, when non-nil, gives each listener its own
// copy of a published value.
func NewBus[T any](clone func(T) T, logger *slog.Logger) *Bus[T] {
	if logger == nil {
		logger = discardLogger()
	}
	return &Bus[T]{
		listeners: make(map[uint64]func(T)),
		clone:     clone,
		logger:    logger,
	}
}

// Subscribe registers listener for every future Publish. The returned
// function removes exactly this registration and may be called any number
// of times.
func (b *Bus[T]) Subscribe(listener func(T)) func() {
	b.mu.Lock()
	b.next++
	handle := b.next
	b.listeners[handle] = listener
	b.order = append(b.order, handle)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(handle) })
	}
}

func (b *Bus[T]) unsubscribe(handle uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[handle]; !ok {
		return
	}
	delete(b.listeners, handle)
	if i := slices.Index(b.order, handle); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Publish delivers v synchronously to the listeners registered at the time
// of the call.
func (b *Bus[T]) Publish(v T) {
	b.mu.RLock()
	targets := make([]func(T), 0, len(b.order))
	for _, handle := range b.order {
		targets = append(targets, b.listeners[handle])
	}
	b.mu.RUnlock()

	for i, listener := range targets {
		value := v
		if b.clone != nil {
			value = b.clone(v)
		}
		b.deliver(i, listener, value)
	}
}

func (b *Bus[T]) deliver(index int, listener func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("toast listener panicked",
				slog.Int("listener", index),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	listener(v)
}

// Len reports the number of registered listeners.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}
