package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// fadedColor is the foreground used while a card is faded out
const fadedColor = "238"

// PopupRenderer handles overlays drawn on top of the poem card
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// Dim strips styles/colors from content and recolors every line a faded gray.
// Line structure is kept so the layout does not jump during a fade.
func Dim(content string) string {
	faded := lipgloss.NewStyle().Foreground(lipgloss.Color(fadedColor))
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = faded.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// RenderBelow stacks a panel under the main content, centered within width
func (pr *PopupRenderer) RenderBelow(mainContent, panel string, width int) string {
	if panel == "" {
		return mainContent
	}
	if width <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, mainContent, panel)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		mainContent,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, panel),
	)
}
