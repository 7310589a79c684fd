package toast

import "time"

// Option sets one field of a toast, or of the global configuration when
// passed to Store.Set. Fields no option names are left alone.
type Option func(*options)

type options struct {
	duration    time.Duration
	hasDuration bool
	position    Position
	animation   Animation
	theme       Theme
	size        Size
	styles      StyleOverrides
	hasStyles   bool
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithDuration sets how long the toast stays up. Zero disables auto-dismiss.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = d
		o.hasDuration = true
	}
}

// WithPosition sets the screen edge.
func WithPosition(p Position) Option {
	return func(o *options) { o.position = p }
}

// WithAnimation sets the entrance animation.
func WithAnimation(a Animation) Option {
	return func(o *options) { o.animation = a }
}

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithSize sets the size token.
func WithSize(s Size) Option {
	return func(o *options) { o.size = s }
}

// WithStyleOverrides sets per-role style fragments. The map is copied.
func WithStyleOverrides(s StyleOverrides) Option {
	return func(o *options) {
		o.styles = s.Clone()
		o.hasStyles = true
	}
}
