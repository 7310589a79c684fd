package app

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nateberkopec/toastee/internal/persistence"
	"github.com/nateberkopec/toastee/toast"
)

type focusArea int

const (
	focusButtons focusArea = iota
	focusInput
)

type area struct {
	top    int
	height int
}

// Config wires external dependencies for the app.
type Config struct {
	Toaster *toast.Toaster
	Logger  *slog.Logger
	// Defaults are the container's configuration fields (theme, size,
	// duration, position, animation, style overrides), applied to the
	// toaster's store when the app is built.
	Defaults []toast.Option
	// Desktop mirrors error and warning toasts to system notifications.
	Desktop bool
	// Persist saves preferences and message history on quit.
	Persist bool
	Clock   func() time.Time
}

// button is one demo action.
type button struct {
	label  string
	hotkey string
	run    func(m *Model)
}

// Model implements the Bubble Tea program: a demo screen of buttons that
// raise toasts, with the toast container drawn over it.
type Model struct {
	toaster   *toast.Toaster
	container *Container
	logger    *slog.Logger
	persist   bool

	buttons       []button
	focus         focusArea
	selectedIndex int
	sizeIndex     int
	width         int
	height        int

	input textinput.Model
	spin  spinner.Model

	listArea  area
	inputArea area

	history      []string
	historyIndex int
	tempInput    string

	stopMirror func()
}

// New creates a Bubble Tea model for the demo.
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	toaster := cfg.Toaster
	if toaster == nil {
		toaster = toast.New(toast.ToasterConfig{Logger: logger, Clock: cfg.Clock})
	}
	toaster.Configure(cfg.Defaults...)

	ti := textinput.New()
	ti.Placeholder = "Type a message and press enter"
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Blur()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	history := []string{}
	if cfg.Persist {
		loaded, err := persistence.LoadHistory()
		if err != nil {
			logger.Warn("failed to load message history", slog.Any("error", err))
		} else {
			history = loaded
		}
	}

	m := &Model{
		toaster:      toaster,
		container:    NewContainer(toaster.Registry(), logger, cfg.Clock),
		logger:       logger,
		persist:      cfg.Persist,
		buttons:      demoButtons(),
		input:        ti,
		spin:         sp,
		history:      history,
		historyIndex: len(history),
		stopMirror:   func() {},
	}
	if cfg.Desktop {
		m.stopMirror = toaster.Subscribe(newDesktopMirror(nil).listen)
	}
	return m
}

// DemoDefaults are the container settings the demo starts from: bold text
// and bouncy entrances.
func DemoDefaults() []toast.Option {
	return []toast.Option{
		toast.WithAnimation(toast.AnimationBounce),
		toast.WithDuration(3 * time.Second),
		toast.WithPosition(toast.PositionTop),
		toast.WithStyleOverrides(toast.StyleOverrides{
			toast.RoleText: {Bold: true},
		}),
	}
}

func demoButtons() []button {
	return []button{
		{"Show Success Toast", "1", func(m *Model) {
			m.toaster.Success("Success! Operation completed successfully.", toast.WithDuration(3*time.Second))
		}},
		{"Show Error Toast", "2", func(m *Model) {
			m.toaster.Error("Error! Something went wrong.", toast.WithDuration(4*time.Second))
		}},
		{"Show Info Toast", "3", func(m *Model) {
			m.toaster.Info("Info: This is an informational message.", toast.WithDuration(2*time.Second))
		}},
		{"Show Warning Toast", "4", func(m *Model) {
			m.toaster.Warning("Warning! Please check your input.", toast.WithDuration(3500*time.Millisecond))
		}},
		{"Bottom Toast", "5", func(m *Model) {
			m.toaster.Success("This toast appears at the bottom!",
				toast.WithPosition(toast.PositionBottom),
				toast.WithDuration(3*time.Second),
			)
		}},
		{"Custom Styled Toast", "6", func(m *Model) {
			m.toaster.Success("Custom styled toast!",
				toast.WithDuration(4*time.Second),
				toast.WithTheme(toast.ThemeNeobrutalist),
				toast.WithSize(toast.SizeSM),
			)
		}},
		{"Theme-Specific Toast", "7", func(m *Model) {
			m.toaster.Info("Theme-specific toast!",
				toast.WithTheme(oppositeTheme(m.toaster.Store().Theme())),
				toast.WithDuration(3*time.Second),
			)
		}},
		{"Next Size", "8", func(m *Model) {
			size := toast.Sizes[m.sizeIndex%len(toast.Sizes)]
			m.sizeIndex++
			m.toaster.Info(fmt.Sprintf("Size: %s", strings.ToUpper(string(size))),
				toast.WithSize(size),
				toast.WithDuration(3*time.Second),
			)
		}},
		{"Long Duration (5s)", "9", func(m *Model) {
			m.toaster.Success("This is using the utility function with 5 second duration!", toast.WithDuration(5*time.Second))
		}},
		{"Sticky Toast", "0", func(m *Model) {
			m.toaster.Warning("Sticky: click it or press x to dismiss", toast.WithDuration(0))
		}},
		{"Switch Theme", "t", func(m *Model) {
			next := oppositeTheme(m.toaster.Store().Theme())
			m.toaster.Configure(toast.WithTheme(next))
			m.toaster.Info(fmt.Sprintf("Switched to %s theme!", next), toast.WithDuration(2*time.Second))
		}},
		{"Next Animation", "a", func(m *Model) {
			next := nextAnimation(m.toaster.Store().DefaultAnimation())
			m.toaster.Configure(toast.WithAnimation(next))
			m.toaster.Info(fmt.Sprintf("Animation: %s", next), toast.WithDuration(2*time.Second))
		}},
		{"Toggle Position", "p", func(m *Model) {
			next := toast.PositionBottom
			if m.toaster.Store().DefaultPosition() == toast.PositionBottom {
				next = toast.PositionTop
			}
			m.toaster.Configure(toast.WithPosition(next))
			m.toaster.Info(fmt.Sprintf("Toasts now appear at the %s", next), toast.WithDuration(2*time.Second))
		}},
		{"Clear All Toasts", "c", func(m *Model) {
			m.toaster.Clear()
		}},
	}
}

func oppositeTheme(current toast.Theme) toast.Theme {
	if current == toast.ThemeNeobrutalist {
		return toast.ThemeMaterial
	}
	return toast.ThemeNeobrutalist
}

func nextAnimation(current toast.Animation) toast.Animation {
	i := slices.Index(toast.Animations, current)
	return toast.Animations[(i+1)%len(toast.Animations)]
}

var keys = struct {
	Quit    key.Binding
	Focus   key.Binding
	Blur    key.Binding
	Up      key.Binding
	Down    key.Binding
	Press   key.Binding
	Dismiss key.Binding
	Input   key.Binding
}{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d", "q")),
	Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab")),
	Blur:    key.NewBinding(key.WithKeys("esc")),
	Up:      key.NewBinding(key.WithKeys("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down")),
	Press:   key.NewBinding(key.WithKeys("enter", " ")),
	Dismiss: key.NewBinding(key.WithKeys("x")),
	Input:   key.NewBinding(key.WithKeys("i", "/")),
}

// Init satisfies the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	spinCmd := func() tea.Msg { return m.spin.Tick() }
	return tea.Batch(textinput.Blink, m.container.Init(), spinCmd)
}

// Update drives the Bubble Tea state machine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.configureLayout()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case snapshotMsg, frameMsg, dismissMsg:
		return m, m.container.Update(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the TUI.
func (m *Model) View() string {
	return renderView(m)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveSelection(-1)
		case tea.MouseButtonWheelDown:
			m.moveSelection(1)
		}
		return m, nil
	}

	if id, ok := m.container.HitTest(msg.X, msg.Y, m.width, m.height); ok {
		return m, m.container.Dismiss(id)
	}
	if m.listArea.contains(msg.Y) {
		index := msg.Y - m.listArea.top
		if index >= 0 && index < len(m.buttons) {
			m.selectedIndex = index
			m.setFocus(focusButtons)
			m.press(index)
		}
	} else if m.inputArea.contains(msg.Y) {
		m.setFocus(focusInput)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		switch {
		case key.Matches(msg, keys.Focus), key.Matches(msg, keys.Blur):
			m.setFocus(focusButtons)
			return m, nil
		case msg.String() == "ctrl+c":
			return m, m.quit()
		case msg.String() == "enter":
			m.submitMessage()
			return m, nil
		case msg.String() == "up":
			m.navigateHistoryUp()
			return m, nil
		case msg.String() == "down":
			m.navigateHistoryDown()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()
	case key.Matches(msg, keys.Focus), key.Matches(msg, keys.Input):
		m.setFocus(focusInput)
		return m, nil
	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, keys.Press):
		m.press(m.selectedIndex)
		return m, nil
	case key.Matches(msg, keys.Dismiss):
		return m, m.container.DismissNewest()
	}

	for i, b := range m.buttons {
		if msg.String() == b.hotkey {
			m.selectedIndex = i
			m.press(i)
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) press(index int) {
	if index < 0 || index >= len(m.buttons) {
		return
	}
	m.buttons[index].run(m)
}

func (m *Model) quit() tea.Cmd {
	m.stopMirror()
	m.container.Close()
	if m.persist {
		if err := persistence.SavePreferences(m.preferences()); err != nil {
			m.logger.Warn("failed to save preferences", slog.Any("error", err))
		}
		if err := persistence.SaveHistory(m.history); err != nil {
			m.logger.Warn("failed to save message history", slog.Any("error", err))
		}
	}
	return tea.Quit
}

func (m *Model) preferences() persistence.Preferences {
	store := m.toaster.Store()
	return persistence.Preferences{
		Theme:     store.Theme(),
		Size:      store.Size(),
		Position:  store.DefaultPosition(),
		Animation: store.DefaultAnimation(),
	}
}

func (m *Model) submitMessage() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.toaster.Warning("Type something first", toast.WithDuration(2*time.Second))
		return
	}

	// Add to history (avoid duplicates of the most recent message)
	if len(m.history) == 0 || m.history[len(m.history)-1] != value {
		m.history = append(m.history, value)
	}
	m.historyIndex = len(m.history)
	m.tempInput = ""

	m.input.SetValue("")
	m.toaster.Info(value)
}

func (m *Model) moveSelection(delta int) {
	m.selectedIndex += delta
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	if m.selectedIndex >= len(m.buttons) {
		m.selectedIndex = len(m.buttons) - 1
	}
}

func (m *Model) setFocus(area focusArea) {
	if m.focus == area {
		return
	}
	m.focus = area
	if area == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) navigateHistoryUp() {
	if len(m.history) == 0 {
		return
	}

	// Save current input if we're at the bottom
	if m.historyIndex == len(m.history) {
		m.tempInput = m.input.Value()
	}

	if m.historyIndex > 0 {
		m.historyIndex--
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
	}
}

func (m *Model) navigateHistoryDown() {
	if len(m.history) == 0 {
		return
	}

	if m.historyIndex < len(m.history) {
		m.historyIndex++
		if m.historyIndex == len(m.history) {
			// Back to current input
			m.input.SetValue(m.tempInput)
		} else {
			m.input.SetValue(m.history[m.historyIndex])
		}
		m.input.CursorEnd()
	}
}

// configureLayout places the button list below the header and the input at
// the bottom. Toasts are drawn over both.
func (m *Model) configureLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	const (
		headerHeight = 3
		inputHeight  = 3
	)
	m.listArea = area{
		top:    headerHeight,
		height: len(m.buttons),
	}
	m.inputArea = area{
		top:    m.height - inputHeight,
		height: inputHeight,
	}
	m.input.Width = max(10, m.width-4)
}

func (a area) contains(y int) bool {
	return y >= a.top && y < a.top+a.height
}
