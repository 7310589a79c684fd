package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nateberkopec/toastee/toast"
)

// Variant holds the colours for one toast kind.
type Variant struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
}

// Palette is the colour and weight table of a theme.
type Palette struct {
	Name     toast.Theme
	Bold     bool
	Shadow   bool
	Variants map[toast.Kind]Variant
}

var (
	// Material uses pastel containers with coloured text and faint borders.
	Material = Palette{
		Name: toast.ThemeMaterial,
		Variants: map[toast.Kind]Variant{
			toast.KindSuccess: {Background: "#E8F5E8", Foreground: "#2E7D2E", Border: "#C8E6C9"},
			toast.KindError:   {Background: "#FFEBEE", Foreground: "#C62828", Border: "#FFCDD2"},
			toast.KindInfo:    {Background: "#E3F2FD", Foreground: "#1565C0", Border: "#BBDEFB"},
			toast.KindWarning: {Background: "#FFF3E0", Foreground: "#E65100", Border: "#FFE0B2"},
		},
	}

	// Neobrutalist uses saturated fills, black borders, heavy text and a hard
	// offset shadow.
	Neobrutalist = Palette{
		Name:   toast.ThemeNeobrutalist,
		Bold:   true,
		Shadow: true,
		Variants: map[toast.Kind]Variant{
			toast.KindSuccess: {Background: "#22C55E", Foreground: "#000000", Border: "#000000"},
			toast.KindError:   {Background: "#EF4444", Foreground: "#FFFFFF", Border: "#000000"},
			toast.KindInfo:    {Background: "#D8B4FE", Foreground: "#000000", Border: "#000000"},
			toast.KindWarning: {Background: "#FACC15", Foreground: "#000000", Border: "#000000"},
		},
	}

	palettes = map[toast.Theme]Palette{
		toast.ThemeMaterial:     Material,
		toast.ThemeNeobrutalist: Neobrutalist,
	}
)

// PaletteFor returns the palette of a theme, falling back to Material.
func PaletteFor(name toast.Theme) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return Material
}

// Variant returns the colours for kind, treating unknown kinds as info.
func (p Palette) Variant(kind toast.Kind) Variant {
	if v, ok := p.Variants[kind]; ok {
		return v
	}
	return p.Variants[toast.KindInfo]
}

const shadowColor = lipgloss.Color("#000000")
