package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"poemdeck/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Poem          domain.Poem
	Index         int
	Total         int
	HasPrev       bool
	HasNext       bool
	Dimmed        bool
	Vertical      bool
	ShowImage     bool
	SearchOpen    bool
	Search        SearchPanelState
	StatusMessage string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	poemRender   *PoemRenderer
	searchRender *SearchRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		poemRender:   NewPoemRenderer(styles),
		searchRender: NewSearchRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("poemdeck"))
	content.WriteString("\n")

	// Title, footer and search panel take roughly this many rows
	reserved := 6
	if state.SearchOpen {
		reserved += 3 + len(state.Search.Results)
	}

	card := r.poemRender.RenderCard(state.Poem, CardOptions{
		Vertical:  state.Vertical,
		ShowImage: state.ShowImage,
		MaxHeight: state.Height - reserved,
		MaxWidth:  state.Width - 4,
	})
	if state.Dimmed {
		card = Dim(card)
	}

	nav := r.poemRender.RenderNavigation(state.Index, state.Total, state.HasPrev, state.HasNext)
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", nav)

	if state.SearchOpen {
		panelState := state.Search
		panelState.Width = min(state.Width, lipgloss.Width(body)+8)
		body = r.popupRender.RenderBelow(body, r.searchRender.RenderPanel(panelState), lipgloss.Width(body))
	}

	if state.Width > 0 {
		body = lipgloss.PlaceHorizontal(state.Width-4, lipgloss.Center, body)
	}
	content.WriteString(body)
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return r.styles.Main.Render(content.String())
}
