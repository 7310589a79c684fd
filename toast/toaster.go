package toast

import (
	"log/slog"
	"time"
)

// ToasterConfig wires external dependencies for New.
type ToasterConfig struct {
	Logger *slog.Logger
	Clock  func() time.Time
	// Defaults are applied to the store before the first toast is created.
	Defaults []Option
}

// Toaster bundles a Store and a Registry behind the calls an application
// makes. Construct one at startup and pass it to whatever needs to raise
// toasts or render them.
type Toaster struct {
	store    *Store
	registry *Registry
}

// New returns a Toaster with its own store and registry.
func New(cfg ToasterConfig) *Toaster {
	store := NewStore()
	store.Set(cfg.Defaults...)
	return &Toaster{
		store: store,
		registry: NewRegistry(RegistryConfig{
			Store:  store,
			Logger: cfg.Logger,
			Clock:  cfg.Clock,
		}),
	}
}

// Configure merges opts over the global defaults. Toasts that already exist
// keep the values they were created with.
func (t *Toaster) Configure(opts ...Option) {
	t.store.Set(opts...)
}

func (t *Toaster) Config() Config { return t.store.Get() }

func (t *Toaster) Success(message string, opts ...Option) ID {
	return t.registry.Success(message, opts...)
}

func (t *Toaster) Error(message string, opts ...Option) ID {
	return t.registry.Error(message, opts...)
}

func (t *Toaster) Info(message string, opts ...Option) ID {
	return t.registry.Info(message, opts...)
}

func (t *Toaster) Warning(message string, opts ...Option) ID {
	return t.registry.Warning(message, opts...)
}

func (t *Toaster) Remove(id ID) { t.registry.Remove(id) }

func (t *Toaster) Clear() { t.registry.Clear() }

func (t *Toaster) Subscribe(listener Listener) func() {
	return t.registry.Subscribe(listener)
}

// Registry exposes the underlying registry for presentation adapters.
func (t *Toaster) Registry() *Registry { return t.registry }

// Store exposes the underlying configuration store.
func (t *Toaster) Store() *Store { return t.store }
