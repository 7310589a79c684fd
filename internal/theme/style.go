package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nateberkopec/toastee/toast"
)

// Styles is everything needed to draw one toast.
type Styles struct {
	Container lipgloss.Style
	Text      lipgloss.Style
	Size      SizeTokens
	Shadow    bool
}

// For resolves the styles of a toast: theme, then size, then the kind
// variant, then overrides (kind-specific before generic, generic last).
func For(t toast.Toast) Styles {
	palette := PaletteFor(t.Theme)
	size := SizeFor(t.Size, t.Theme)
	variant := palette.Variant(t.Kind)

	container := lipgloss.NewStyle().
		Border(size.Border).
		BorderForeground(variant.Border).
		Background(variant.Background).
		Padding(size.PadY, size.PadX)
	text := lipgloss.NewStyle().
		Foreground(variant.Foreground).
		Bold(palette.Bold).
		Align(lipgloss.Center)

	background := string(variant.Background)
	textBackground := ""
	for _, role := range []toast.StyleRole{t.Kind.ContainerRole(), toast.RoleContainer} {
		frag, ok := t.StyleOverrides[role]
		if !ok {
			continue
		}
		container = applyFragment(container, frag)
		if frag.Background != "" {
			background = frag.Background
		}
	}
	for _, role := range []toast.StyleRole{t.Kind.TextRole(), toast.RoleText} {
		frag, ok := t.StyleOverrides[role]
		if !ok {
			continue
		}
		text = applyFragment(text, frag)
		if frag.Background != "" {
			textBackground = frag.Background
		}
	}
	if textBackground == "" {
		text = text.Background(lipgloss.Color(background))
	}

	return Styles{
		Container: container,
		Text:      text,
		Size:      size,
		Shadow:    palette.Shadow,
	}
}

func applyFragment(style lipgloss.Style, frag toast.StyleFragment) lipgloss.Style {
	if frag.Foreground != "" {
		style = style.Foreground(lipgloss.Color(frag.Foreground))
	}
	if frag.Background != "" {
		style = style.Background(lipgloss.Color(frag.Background))
	}
	if frag.BorderForeground != "" {
		style = style.BorderForeground(lipgloss.Color(frag.BorderForeground))
	}
	if frag.Bold {
		style = style.Bold(true)
	}
	if frag.Italic {
		style = style.Italic(true)
	}
	return style
}

// Render draws a toast no wider than available cells. The box grows from
// the size's width toward its max width to fit the message.
func Render(t toast.Toast, available int) string {
	return render(t, available, false)
}

// RenderFaint draws a toast dimmed, for frames of a fade.
func RenderFaint(t toast.Toast, available int) string {
	return render(t, available, true)
}

func render(t toast.Toast, available int, faint bool) string {
	s := For(t)
	if faint {
		s.Container = s.Container.Faint(true)
		s.Text = s.Text.Faint(true)
	}

	frame := s.Container.GetHorizontalFrameSize()
	width := lipgloss.Width(t.Message) + frame
	width = max(width, s.Size.Width)
	width = min(width, s.Size.MaxWidth)
	if s.Shadow {
		available--
	}
	if available > 0 {
		width = min(width, available)
	}

	contentWidth := max(1, width-frame)
	text := s.Text.Width(contentWidth).Render(t.Message)
	box := s.Container.Render(text)
	if s.Shadow {
		box = withShadow(box)
	}
	return box
}

// withShadow adds a one-cell hard shadow below and to the right.
func withShadow(box string) string {
	shadow := lipgloss.NewStyle().Foreground(shadowColor)
	lines := strings.Split(box, "\n")
	width := lipgloss.Width(box)
	for i := range lines {
		if i == 0 {
			lines[i] += " "
			continue
		}
		lines[i] += shadow.Render("█")
	}
	lines = append(lines, " "+shadow.Render(strings.Repeat("▀", width)))
	return strings.Join(lines, "\n")
}
