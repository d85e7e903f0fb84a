package views

import (
	"github.com/charmbracelet/lipgloss"

	"poemdeck/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Card        lipgloss.Style
	PoemTitle   lipgloss.Style
	Byline      lipgloss.Style
	Line        lipgloss.Style
	Seal        lipgloss.Style
	Image       lipgloss.Style
	Counter     lipgloss.Style
	NavEnabled  lipgloss.Style
	NavDisabled lipgloss.Style
	SearchBox   lipgloss.Style
	Prompt      lipgloss.Style
	ResultTitle lipgloss.Style
	ResultMeta  lipgloss.Style
	NoResult    lipgloss.Style
	HighlightBg lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("137")).
			Padding(1, 3),
		PoemTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("223")),
		Byline:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Line:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Seal: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")).
			Padding(0, 1),
		Image:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		NavEnabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("223")).Bold(true),
		NavDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ResultTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ResultMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		NoResult:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// MatchKindColor returns the tag color for a search match kind
func MatchKindColor(kind domain.MatchKind) string {
	switch kind {
	case domain.MatchTitle:
		return "78" // green
	case domain.MatchAuthor:
		return "33" // blue
	default:
		return "214" // yellow for line matches
	}
}
