// Package persistence keeps the demo's preferences and message history in
// the XDG data directory.
package persistence

import (
	"github.com/nateberkopec/toastee/toast"
)

const preferencesFile = "preferences.json"

// Preferences are the demo's appearance choices, restored on the next run.
type Preferences struct {
	Theme     toast.Theme     `json:"theme,omitempty"`
	Size      toast.Size      `json:"size,omitempty"`
	Position  toast.Position  `json:"position,omitempty"`
	Animation toast.Animation `json:"animation,omitempty"`
}

// Options converts the non-empty preferences into configuration options.
func (p Preferences) Options() []toast.Option {
	var opts []toast.Option
	if p.Theme != "" {
		opts = append(opts, toast.WithTheme(p.Theme))
	}
	if p.Size != "" {
		opts = append(opts, toast.WithSize(p.Size))
	}
	if p.Position != "" {
		opts = append(opts, toast.WithPosition(p.Position))
	}
	if p.Animation != "" {
		opts = append(opts, toast.WithAnimation(p.Animation))
	}
	return opts
}

func SavePreferences(prefs Preferences) error {
	return save(preferencesFile, prefs)
}

// LoadPreferences returns the saved preferences, or zero preferences when
// nothing was saved yet.
func LoadPreferences() (Preferences, error) {
	return load[Preferences](preferencesFile)
}
