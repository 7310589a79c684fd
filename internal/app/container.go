package app

import (
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nateberkopec/toastee/internal/motion"
	"github.com/nateberkopec/toastee/internal/theme"
	"github.com/nateberkopec/toastee/toast"
)

type phase int

const (
	phaseEntering phase = iota
	phaseShown
	phaseExiting
)

// Opacity thresholds for terminal rendering: below fadeHidden nothing is
// drawn, below fadeFaint the toast is drawn faint.
const (
	fadeHidden = 0.15
	fadeFaint  = 0.6
)

type toastItem struct {
	toast    toast.Toast
	phase    phase
	started  time.Time
	timeline motion.Timeline
}

// snapshotMsg carries the latest registry snapshot into the event loop.
type snapshotMsg struct {
	Toasts []toast.Toast
}

type frameMsg struct{}

type dismissMsg struct {
	ID toast.ID
}

// mailbox keeps only the newest snapshot. The registry delivers
// synchronously, possibly from inside Update, so the listener must never
// block on the Bubble Tea event loop.
type mailbox struct {
	mu      sync.Mutex
	latest  []toast.Toast
	pending bool
	signal  chan struct{}
	done    chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (mb *mailbox) put(active []toast.Toast) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.latest = active
	if !mb.pending {
		mb.pending = true
		select {
		case mb.signal <- struct{}{}:
		default:
		}
	}
}

func (mb *mailbox) take() []toast.Toast {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.pending = false
	return mb.latest
}

func (mb *mailbox) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-mb.signal:
			return snapshotMsg{Toasts: mb.take()}
		case <-mb.done:
			return nil
		}
	}
}

// Container renders the registry's toasts. It plays entrance animations for
// new toasts, runs auto-dismiss timers, and removes a toast from the registry
// only after its exit animation finishes.
type Container struct {
	registry *toast.Registry
	logger   *slog.Logger
	clock    func() time.Time

	items     []*toastItem
	removed   map[toast.ID]struct{}
	animating bool

	inbox       *mailbox
	unsubscribe func()
}

// NewContainer subscribes to registry. Close releases the subscription.
func NewContainer(registry *toast.Registry, logger *slog.Logger, clock func() time.Time) *Container {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clock == nil {
		clock = time.Now
	}
	c := &Container{
		registry: registry,
		logger:   logger,
		clock:    clock,
		removed:  make(map[toast.ID]struct{}),
		inbox:    newMailbox(),
	}
	c.unsubscribe = registry.Subscribe(c.inbox.put)
	return c
}

// Init starts listening for snapshots.
func (c *Container) Init() tea.Cmd {
	return c.inbox.wait()
}

// Close stops listening. Safe to call more than once.
func (c *Container) Close() {
	c.unsubscribe()
	select {
	case <-c.inbox.done:
	default:
		close(c.inbox.done)
	}
}

// Update handles the container's own messages and ignores the rest.
func (c *Container) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case snapshotMsg:
		cmd := c.reconcile(msg.Toasts)
		return tea.Batch(cmd, c.inbox.wait())
	case frameMsg:
		return c.advance()
	case dismissMsg:
		return c.Dismiss(msg.ID)
	}
	return nil
}

// reconcile brings the rendered items in line with a registry snapshot.
func (c *Container) reconcile(active []toast.Toast) tea.Cmd {
	now := c.clock()
	existing := make(map[toast.ID]*toastItem, len(c.items))
	for _, it := range c.items {
		existing[it.toast.ID] = it
	}

	present := make(map[toast.ID]struct{}, len(active))
	var cmds []tea.Cmd
	items := make([]*toastItem, 0, len(active))
	for _, t := range active {
		present[t.ID] = struct{}{}
		if _, gone := c.removed[t.ID]; gone {
			continue
		}
		if it, ok := existing[t.ID]; ok {
			items = append(items, it)
			continue
		}
		items = append(items, &toastItem{
			toast:    t,
			phase:    phaseEntering,
			started:  now,
			timeline: motion.Entrance(t.Animation),
		})
		if t.AutoDismiss() {
			id := t.ID
			cmds = append(cmds, tea.Tick(t.Duration, func(time.Time) tea.Msg {
				return dismissMsg{ID: id}
			}))
		}
		c.logger.Debug("toast mounted", slog.String("id", t.ID.String()))
	}
	for id := range c.removed {
		if _, ok := present[id]; !ok {
			delete(c.removed, id)
		}
	}
	c.items = items

	cmds = append(cmds, c.ensureFrames())
	return tea.Batch(cmds...)
}

// Dismiss starts the exit animation of a toast. Requests for toasts that are
// already leaving, or no longer shown, are ignored.
func (c *Container) Dismiss(id toast.ID) tea.Cmd {
	it := c.find(id)
	if it == nil || it.phase == phaseExiting {
		return nil
	}
	it.phase = phaseExiting
	it.started = c.clock()
	it.timeline = motion.Exit()
	c.logger.Debug("toast exiting", slog.String("id", id.String()))
	return c.ensureFrames()
}

// DismissNewest dismisses the most recently created toast that is not
// already leaving.
func (c *Container) DismissNewest() tea.Cmd {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].phase != phaseExiting {
			return c.Dismiss(c.items[i].toast.ID)
		}
	}
	return nil
}

func (c *Container) advance() tea.Cmd {
	now := c.clock()
	var finished []toast.ID
	busy := false
	for _, it := range c.items {
		if it.phase == phaseShown {
			continue
		}
		frame := it.timeline.At(now.Sub(it.started))
		if !frame.Done {
			busy = true
			continue
		}
		switch it.phase {
		case phaseEntering:
			it.phase = phaseShown
		case phaseExiting:
			finished = append(finished, it.toast.ID)
		}
	}

	for _, id := range finished {
		c.drop(id)
		c.registry.Remove(id)
	}

	if !busy {
		c.animating = false
		return nil
	}
	return c.tick()
}

func (c *Container) drop(id toast.ID) {
	c.removed[id] = struct{}{}
	for i, it := range c.items {
		if it.toast.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Container) ensureFrames() tea.Cmd {
	if c.animating {
		return nil
	}
	for _, it := range c.items {
		if it.phase != phaseShown {
			c.animating = true
			return c.tick()
		}
	}
	return nil
}

func (c *Container) tick() tea.Cmd {
	return tea.Tick(motion.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (c *Container) find(id toast.ID) *toastItem {
	for _, it := range c.items {
		if it.toast.ID == id {
			return it
		}
	}
	return nil
}

// Len reports how many toasts are on screen, including those leaving.
func (c *Container) Len() int {
	return len(c.items)
}

// block is a laid-out toast: its rendered lines and where they land.
type block struct {
	id    toast.ID
	lines []string
	top   int
	left  int
	width int
}

// layout positions every toast for a screen of the given size. Top toasts
// stack downward from row 0, bottom toasts upward from the last row.
func (c *Container) layout(width, height int) []block {
	now := c.clock()
	var tops, bottoms []*toastItem
	for _, it := range c.items {
		if it.toast.Position == toast.PositionBottom {
			bottoms = append(bottoms, it)
		} else {
			tops = append(tops, it)
		}
	}

	var blocks []block
	row := 0
	for _, it := range tops {
		b := c.renderItem(it, now, width, false)
		b.top = row
		row += len(b.lines)
		blocks = append(blocks, b)
	}

	row = height
	for i := len(bottoms) - 1; i >= 0; i-- {
		b := c.renderItem(bottoms[i], now, width, true)
		row -= len(b.lines)
		b.top = row
		blocks = append(blocks, b)
	}
	return blocks
}

func (c *Container) renderItem(it *toastItem, now time.Time, width int, fromBottom bool) block {
	frame := motion.Rest
	if it.phase != phaseShown {
		frame = it.timeline.At(now.Sub(it.started))
	}

	var rendered string
	if frame.Opacity < fadeFaint {
		rendered = theme.RenderFaint(it.toast, width)
	} else {
		rendered = theme.Render(it.toast, width)
	}
	lines := strings.Split(rendered, "\n")
	boxWidth := lipgloss.Width(rendered)
	if frame.Opacity < fadeHidden {
		blank := strings.Repeat(" ", boxWidth)
		for i := range lines {
			lines[i] = blank
		}
	}

	lines = displace(lines, frame.Offset, fromBottom, boxWidth)
	return block{
		id:    it.toast.ID,
		lines: lines,
		left:  max(0, (width-boxWidth)/2),
		width: boxWidth,
	}
}

// displace shifts lines toward the screen edge by offset (a fraction of the
// block height). Positive offsets crop rows at the edge; negative offsets
// push the block away from it.
func displace(lines []string, offset float64, fromBottom bool, width int) []string {
	shift := int(math.Round(offset * float64(len(lines))))
	switch {
	case shift > 0:
		shift = min(shift, len(lines))
		if fromBottom {
			return lines[:len(lines)-shift]
		}
		return lines[shift:]
	case shift < 0:
		pad := make([]string, -shift)
		for i := range pad {
			pad[i] = strings.Repeat(" ", width)
		}
		if fromBottom {
			return append(lines, pad...)
		}
		return append(pad, lines...)
	}
	return lines
}

// Overlay draws the toasts over a base view of the given size.
func (c *Container) Overlay(base string, width, height int) string {
	if len(c.items) == 0 {
		return base
	}
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	for _, b := range c.layout(width, height) {
		for i, line := range b.lines {
			y := b.top + i
			if y < 0 || y >= len(rows) {
				continue
			}
			rows[y] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
	}
	return strings.Join(rows, "\n")
}

// HitTest returns the toast drawn at cell (x, y), if any.
func (c *Container) HitTest(x, y, width, height int) (toast.ID, bool) {
	for _, b := range c.layout(width, height) {
		if y >= b.top && y < b.top+len(b.lines) && x >= b.left && x < b.left+b.width {
			return b.id, true
		}
	}
	return 0, false
}
