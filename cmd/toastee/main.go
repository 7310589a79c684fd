package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nateberkopec/toastee/internal/app"
	"github.com/nateberkopec/toastee/internal/persistence"
	"github.com/nateberkopec/toastee/internal/settings"
	"github.com/nateberkopec/toastee/toast"
)

func main() {
	env, err := settings.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var (
		theme     string
		size      string
		position  string
		animation string
		duration  time.Duration
		desktop   bool
		debug     bool
	)

	flag.StringVar(&theme, "theme", env.Theme, "toast theme (material or neobrutalist)")
	flag.StringVar(&size, "size", env.Size, "toast size (xs, sm, md, lg, xl, 2xl)")
	flag.StringVar(&position, "position", env.Position, "where toasts appear (top or bottom)")
	flag.StringVar(&animation, "animation", env.Animation, "entrance animation (slide, fade, spring, bounce)")
	flag.DurationVar(&duration, "duration", env.Duration, "default auto-dismiss delay, 0 keeps toasts until dismissed")
	flag.BoolVar(&desktop, "desktop", env.Desktop, "mirror error and warning toasts to desktop notifications")
	flag.BoolVar(&debug, "debug", env.Debug, "write debug logs to "+env.LogFile)
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if debug {
		f, err := tea.LogToFile(env.LogFile, "toastee")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = newLogger(f)
	}

	defaults := app.DemoDefaults()
	prefs, err := persistence.LoadPreferences()
	if err != nil {
		logger.Warn("failed to load preferences", slog.Any("error", err))
	}
	defaults = append(defaults, prefs.Options()...)
	defaults = append(defaults,
		toast.WithTheme(toast.Theme(theme)),
		toast.WithSize(toast.Size(size)),
		toast.WithPosition(toast.Position(position)),
		toast.WithAnimation(toast.Animation(animation)),
		toast.WithDuration(duration),
	)

	cfg := app.Config{
		Toaster:  toast.New(toast.ToasterConfig{Logger: logger}),
		Logger:   logger,
		Defaults: defaults,
		Desktop:  desktop,
		Persist:  true,
	}

	program := tea.NewProgram(
		app.New(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
