package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nateberkopec/toastee/toast"
)

// SizeTokens are size settings in terminal cells.
type SizeTokens struct {
	Width    int
	MaxWidth int
	PadX     int
	PadY     int
	Border   lipgloss.Border
}

var materialSizes = map[toast.Size]SizeTokens{
	toast.SizeXS:  {Width: 15, MaxWidth: 22, PadX: 1, PadY: 0, Border: lipgloss.RoundedBorder()},
	toast.SizeSM:  {Width: 20, MaxWidth: 30, PadX: 2, PadY: 0, Border: lipgloss.RoundedBorder()},
	toast.SizeMD:  {Width: 25, MaxWidth: 37, PadX: 2, PadY: 0, Border: lipgloss.RoundedBorder()},
	toast.SizeLG:  {Width: 31, MaxWidth: 50, PadX: 3, PadY: 1, Border: lipgloss.RoundedBorder()},
	toast.SizeXL:  {Width: 40, MaxWidth: 62, PadX: 3, PadY: 1, Border: lipgloss.RoundedBorder()},
	toast.Size2XL: {Width: 50, MaxWidth: 75, PadX: 4, PadY: 1, Border: lipgloss.RoundedBorder()},
}

var neobrutalistSizes = map[toast.Size]SizeTokens{
	toast.SizeXS:  {Width: 15, MaxWidth: 22, PadX: 1, PadY: 0, Border: lipgloss.NormalBorder()},
	toast.SizeSM:  {Width: 20, MaxWidth: 30, PadX: 1, PadY: 0, Border: lipgloss.NormalBorder()},
	toast.SizeMD:  {Width: 25, MaxWidth: 37, PadX: 2, PadY: 0, Border: lipgloss.ThickBorder()},
	toast.SizeLG:  {Width: 31, MaxWidth: 50, PadX: 2, PadY: 1, Border: lipgloss.ThickBorder()},
	toast.SizeXL:  {Width: 40, MaxWidth: 62, PadX: 3, PadY: 1, Border: lipgloss.BlockBorder()},
	toast.Size2XL: {Width: 50, MaxWidth: 75, PadX: 3, PadY: 1, Border: lipgloss.BlockBorder()},
}

// SizeFor returns the tokens for a size under a theme. Unknown sizes use md
// and unknown themes use the material table.
func SizeFor(size toast.Size, name toast.Theme) SizeTokens {
	table := materialSizes
	if name == toast.ThemeNeobrutalist {
		table = neobrutalistSizes
	}
	if tokens, ok := table[size]; ok {
		return tokens
	}
	return table[toast.SizeMD]
}
