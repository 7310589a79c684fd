package toast

import (
	"sync"
	"time"
)

// Hardcoded fallbacks used when neither the caller nor the store supplies a value.
const (
	DefaultTheme     = ThemeMaterial
	DefaultSize      = SizeMD
	DefaultDuration  = 3 * time.Second
	DefaultPosition  = PositionTop
	DefaultAnimation = AnimationSlide
)

// Config is a snapshot of the global defaults.
type Config struct {
	Theme            Theme
	Size             Size
	DefaultDuration  time.Duration
	DefaultPosition  Position
	DefaultAnimation Animation
	StyleOverrides   StyleOverrides
}

// Store holds the global defaults consulted when toasts are created. The
// zero value is usable and answers every accessor with its fallback.
type Store struct {
	mu          sync.RWMutex
	cfg         Config
	durationSet bool
}

// NewStore returns a store initialized with the hardcoded defaults.
func NewStore() *Store {
	return &Store{
		cfg: Config{
			Theme:            DefaultTheme,
			Size:             DefaultSize,
			DefaultDuration:  DefaultDuration,
			DefaultPosition:  DefaultPosition,
			DefaultAnimation: DefaultAnimation,
		},
		durationSet: true,
	}
}

// Set merges the given options over the current configuration. Values are
// not validated.
func (s *Store) Set(opts ...Option) {
	o := collect(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if o.theme != "" {
		s.cfg.Theme = o.theme
	}
	if o.size != "" {
		s.cfg.Size = o.size
	}
	if o.hasDuration {
		s.cfg.DefaultDuration = o.duration
		s.durationSet = true
	}
	if o.position != "" {
		s.cfg.DefaultPosition = o.position
	}
	if o.animation != "" {
		s.cfg.DefaultAnimation = o.animation
	}
	if o.hasStyles {
		s.cfg.StyleOverrides = o.styles
	}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	cfg.StyleOverrides = cfg.StyleOverrides.Clone()
	return cfg
}

func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.Theme == "" {
		return DefaultTheme
	}
	return s.cfg.Theme
}

func (s *Store) Size() Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.Size == "" {
		return DefaultSize
	}
	return s.cfg.Size
}

// DefaultDuration returns the configured duration, or the fallback if none
// was ever set. An explicit zero is kept: toasts stay until dismissed.
func (s *Store) DefaultDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.durationSet {
		return DefaultDuration
	}
	return s.cfg.DefaultDuration
}

func (s *Store) DefaultPosition() Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.DefaultPosition == "" {
		return DefaultPosition
	}
	return s.cfg.DefaultPosition
}

func (s *Store) DefaultAnimation() Animation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.DefaultAnimation == "" {
		return DefaultAnimation
	}
	return s.cfg.DefaultAnimation
}

// StyleOverrides returns a copy of the configured overrides, never nil.
func (s *Store) StyleOverrides() StyleOverrides {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.StyleOverrides == nil {
		return StyleOverrides{}
	}
	return s.cfg.StyleOverrides.Clone()
}

// resolve builds a toast from per-call options layered over the store.
func (s *Store) resolve(o options) Toast {
	s.mu.RLock()
	cfg := s.cfg
	cfg.StyleOverrides = cfg.StyleOverrides.Clone()
	duration := DefaultDuration
	if s.durationSet {
		duration = cfg.DefaultDuration
	}
	s.mu.RUnlock()

	t := Toast{
		Duration:       duration,
		Position:       firstNonEmpty(o.position, cfg.DefaultPosition, DefaultPosition),
		Animation:      firstNonEmpty(o.animation, cfg.DefaultAnimation, DefaultAnimation),
		Theme:          firstNonEmpty(o.theme, cfg.Theme, DefaultTheme),
		Size:           firstNonEmpty(o.size, cfg.Size, DefaultSize),
		StyleOverrides: cfg.StyleOverrides,
	}
	if o.hasDuration {
		t.Duration = o.duration
	}
	if o.hasStyles {
		t.StyleOverrides = o.styles
	}
	return t
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
