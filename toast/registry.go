package toast

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Listener receives the full ordered set of active toasts after every
// mutation.
type Listener func([]Toast)

// RegistryConfig wires the Registry's collaborators.
type RegistryConfig struct {
	// Store supplies defaults. A fresh store is used when nil.
	Store *Store
	// Logger receives debug traces and listener faults.
	Logger *slog.Logger
	// Clock stamps CreatedAt. Defaults to time.Now.
	Clock func() time.Time
}

// Registry owns the ordered collection of active toasts and notifies
// subscribers after each mutation. Its methods never block on listeners
// beyond running them; it holds no timers.
//
// Mutations are serialized and each one queues a snapshot. Snapshots are
// delivered outside the lock, in mutation order, by whichever caller finds
// the queue idle; listeners may call back into the Registry. A mutation made
// while another goroutine (or an enclosing listener) is delivering returns
// once queued, and its snapshot follows the one in flight.
type Registry struct {
	store  *Store
	bus    *Bus[[]Toast]
	clock  func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	seq      ID
	order    []ID
	toasts   map[ID]Toast
	pending  []delivery
	draining bool
}

// delivery is a queued snapshot. A non-nil only targets a single new
// subscriber instead of the whole bus.
type delivery struct {
	toasts []Toast
	only   Listener
	index  int
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	store := cfg.Store
	if store == nil {
		store = NewStore()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Registry{
		store:  store,
		bus:    NewBus(cloneToasts, logger),
		clock:  clock,
		logger: logger,
		toasts: make(map[ID]Toast),
	}
}

// Store returns the configuration store the registry reads defaults from.
func (r *Registry) Store() *Store {
	return r.store
}

// Create adds a toast and returns its id. Options win field by field over
// the store's current defaults, which in turn win over the hardcoded ones.
func (r *Registry) Create(kind Kind, message string, opts ...Option) ID {
	t := r.store.resolve(collect(opts))
	t.Kind = kind
	t.Message = message

	r.mu.Lock()
	r.seq++
	t.ID = r.seq
	t.CreatedAt = r.clock()
	r.toasts[t.ID] = t
	r.order = append(r.order, t.ID)
	snapshot := r.enqueueLocked()
	r.mu.Unlock()

	r.logger.Debug("toast added",
		slog.String("id", t.ID.String()),
		slog.String("kind", string(kind)),
		slog.Duration("duration", t.Duration),
		slog.Int("active", len(snapshot)),
	)
	r.flush()
	return t.ID
}

func (r *Registry) Success(message string, opts ...Option) ID {
	return r.Create(KindSuccess, message, opts...)
}

func (r *Registry) Error(message string, opts ...Option) ID {
	return r.Create(KindError, message, opts...)
}

func (r *Registry) Info(message string, opts ...Option) ID {
	return r.Create(KindInfo, message, opts...)
}

func (r *Registry) Warning(message string, opts ...Option) ID {
	return r.Create(KindWarning, message, opts...)
}

// Remove drops the toast with the given id. Unknown ids are ignored, but
// subscribers are still notified.
func (r *Registry) Remove(id ID) {
	r.mu.Lock()
	_, found := r.toasts[id]
	if found {
		delete(r.toasts, id)
		if i := slices.Index(r.order, id); i >= 0 {
			r.order = slices.Delete(r.order, i, i+1)
		}
	}
	snapshot := r.enqueueLocked()
	r.mu.Unlock()

	if found {
		r.logger.Debug("toast removed", slog.String("id", id.String()), slog.Int("active", len(snapshot)))
	} else {
		r.logger.Debug("toast not found for removal", slog.String("id", id.String()))
	}
	r.flush()
}

// Clear removes every toast.
func (r *Registry) Clear() {
	r.mu.Lock()
	cleared := len(r.order)
	r.order = nil
	r.toasts = make(map[ID]Toast)
	r.enqueueLocked()
	r.mu.Unlock()

	r.logger.Debug("toasts cleared", slog.Int("cleared", cleared))
	r.flush()
}

// Subscribe registers listener and hands it the current snapshot ahead of
// any later one. The returned function unsubscribes; calling it again is a no-op.
func (r *Registry) Subscribe(listener Listener) func() {
	unsubscribe := r.bus.Subscribe(listener)

	r.mu.Lock()
	r.pending = append(r.pending, delivery{
		toasts: r.snapshotLocked(),
		only:   listener,
		index:  r.bus.Len() - 1,
	})
	r.mu.Unlock()

	r.flush()
	return unsubscribe
}

// Snapshot returns the active toasts in insertion order.
func (r *Registry) Snapshot() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneToasts(r.snapshotLocked())
}

// Get looks up an active toast.
func (r *Registry) Get(id ID) (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.toasts[id]
	if ok {
		t.StyleOverrides = t.StyleOverrides.Clone()
	}
	return t, ok
}

// Len reports the number of active toasts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// enqueueLocked queues the current snapshot for delivery and returns it.
func (r *Registry) enqueueLocked() []Toast {
	snapshot := r.snapshotLocked()
	r.pending = append(r.pending, delivery{toasts: snapshot})
	return snapshot
}

// flush delivers queued snapshots in order. Only one caller drains at a
// time; the others return at once and leave their snapshots to it.
func (r *Registry) flush() {
	r.mu.Lock()
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]
		r.mu.Unlock()

		if next.only != nil {
			r.bus.deliver(next.index, next.only, cloneToasts(next.toasts))
		} else {
			r.bus.Publish(next.toasts)
		}

		r.mu.Lock()
	}
	r.pending = nil
	r.draining = false
	r.mu.Unlock()
}

func (r *Registry) snapshotLocked() []Toast {
	items := make([]Toast, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.toasts[id]; ok {
			items = append(items, t)
		}
	}
	return items
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
