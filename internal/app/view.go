package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))

	rowStyle = lipgloss.NewStyle()

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("57")).
				Foreground(lipgloss.Color("230"))

	hotkeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("105"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	inputStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputFocusedStyle = inputStyle.BorderForeground(lipgloss.Color("105"))
)

func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}

	var out []string
	out = append(out, titleStyle.Width(m.width).Render(pad("🍞 toastee demo", m.width)))
	out = append(out, renderStatusLine(m))
	out = append(out, "")
	out = append(out, renderButtons(m)...)

	footer := []string{renderHelpText(m), renderInputField(m)}
	footerHeight := lipgloss.Height(strings.Join(footer, "\n"))
	for len(out) < m.height-footerHeight {
		out = append(out, "")
	}
	out = append(out, footer...)

	base := strings.Join(out, "\n")
	return m.container.Overlay(base, m.width, m.height)
}

func renderStatusLine(m *Model) string {
	cfg := m.toaster.Config()
	text := fmt.Sprintf("theme: %s • size: %s • animation: %s • position: %s • duration: %s",
		cfg.Theme, cfg.Size, cfg.DefaultAnimation, cfg.DefaultPosition, cfg.DefaultDuration)
	if n := m.container.Len(); n > 0 {
		text = fmt.Sprintf("%s • %d active %s", text, n, m.spin.View())
	}
	return statusStyle.Width(m.width).Render(pad(truncate(text, m.width), m.width))
}

func renderButtons(m *Model) []string {
	rows := make([]string, 0, len(m.buttons))
	for i, b := range m.buttons {
		label := fmt.Sprintf(" %s  %s", hotkeyStyle.Render("["+b.hotkey+"]"), b.label)
		if i == m.selectedIndex && m.focus == focusButtons {
			rows = append(rows, selectedRowStyle.Width(m.width).Render(label))
			continue
		}
		rows = append(rows, rowStyle.Render(label))
	}
	return rows
}

func renderHelpText(m *Model) string {
	help := "[enter] press • [x] dismiss newest • [tab] message • click a toast to dismiss • [q] quit"
	return helpStyle.Width(m.width).Render(pad(truncate(help, m.width), m.width))
}

func renderInputField(m *Model) string {
	view := m.input.View()
	if m.focus == focusInput {
		return inputFocusedStyle.Render(view)
	}
	return inputStyle.Render(view)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width <= 1 {
		return lipgloss.NewStyle().MaxWidth(1).Render(text)
	}
	trimmed := lipgloss.NewStyle().MaxWidth(width - 1).Render(text)
	return trimmed + "…"
}

func pad(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
