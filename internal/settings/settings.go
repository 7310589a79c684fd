// Package settings loads the demo's startup configuration from the
// environment and an optional .env file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/nateberkopec/toastee/toast"
)

// Settings mirrors the command-line flags; flags override these values.
type Settings struct {
	Theme     string        `env:"TOAST_THEME"`
	Size      string        `env:"TOAST_SIZE"`
	Position  string        `env:"TOAST_POSITION"`
	Animation string        `env:"TOAST_ANIMATION"`
	Duration  time.Duration `env:"TOAST_DURATION" envDefault:"3s"`
	Desktop   bool          `env:"TOAST_DESKTOP"`
	Debug     bool          `env:"TOAST_DEBUG"`
	LogFile   string        `env:"TOAST_LOG_FILE" envDefault:"toastee.log"`
}

var (
	// ErrParse wraps environment parsing failures.
	ErrParse = errors.New("settings: invalid environment")
	// ErrEnvFile wraps .env files that exist but cannot be read or parsed.
	ErrEnvFile = errors.New("settings: invalid env file")
)

// Load reads envFiles (missing files are ignored) and then the process
// environment. Variables already set in the environment win over the files.
func Load(envFiles ...string) (Settings, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: %s: %w", ErrEnvFile, file, err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return s, nil
}

// Options converts the set fields into toast configuration options.
// Strings pass through unvalidated, like every other configuration path.
func (s Settings) Options() []toast.Option {
	opts := []toast.Option{toast.WithDuration(s.Duration)}
	if s.Theme != "" {
		opts = append(opts, toast.WithTheme(toast.Theme(s.Theme)))
	}
	if s.Size != "" {
		opts = append(opts, toast.WithSize(toast.Size(s.Size)))
	}
	if s.Position != "" {
		opts = append(opts, toast.WithPosition(toast.Position(s.Position)))
	}
	if s.Animation != "" {
		opts = append(opts, toast.WithAnimation(toast.Animation(s.Animation)))
	}
	return opts
}
