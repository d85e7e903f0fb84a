package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"poemdeck/internal/domain"
)

// NoResultsText is shown when a search finds nothing
const NoResultsText = "未找到相关诗词"

// SearchPanelState is the slice of UI state the search panel needs
type SearchPanelState struct {
	Prompt         string
	Input          string
	Focused        bool
	ResultsVisible bool
	Results        []domain.SearchResult
	Highlighted    int
	Width          int
}

// SearchRenderer handles rendering of the search panel
type SearchRenderer struct {
	styles *Styles
}

// NewSearchRenderer creates a new search renderer
func NewSearchRenderer(styles *Styles) *SearchRenderer {
	return &SearchRenderer{
		styles: styles,
	}
}

// RenderPanel renders the input line and, when visible, the results list
func (sr *SearchRenderer) RenderPanel(state SearchPanelState) string {
	var b strings.Builder

	prompt := state.Prompt
	if prompt == "" {
		prompt = "搜索: "
	}
	promptStyle := sr.styles.Prompt
	if !state.Focused {
		promptStyle = sr.styles.Dim
	}
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString(state.Input)

	if state.ResultsVisible {
		b.WriteString("\n")
		if len(state.Results) == 0 {
			b.WriteString(sr.styles.NoResult.Render(NoResultsText))
		} else {
			for i, result := range state.Results {
				b.WriteString("\n")
				b.WriteString(sr.renderResult(result, i == state.Highlighted))
			}
		}
	}

	style := sr.styles.SearchBox
	if state.Width > 8 {
		style = style.Width(state.Width - 4)
	}
	return style.Render(b.String())
}

func (sr *SearchRenderer) renderResult(result domain.SearchResult, highlighted bool) string {
	tag := lipgloss.NewStyle().
		Foreground(lipgloss.Color(MatchKindColor(result.MatchKind))).
		Render(fmt.Sprintf("[%s]", MatchKindLabel(result.MatchKind)))

	meta := result.Poem.Author
	if result.Poem.Dynasty != "" {
		meta = result.Poem.Dynasty + "·" + result.Poem.Author
	}

	cursor := "  "
	if highlighted {
		cursor = "▸ "
	}
	line := fmt.Sprintf("%s📜 %s  %s  %s",
		cursor,
		sr.styles.ResultTitle.Render(result.Poem.Title),
		sr.styles.ResultMeta.Render(meta),
		tag,
	)
	if highlighted {
		return sr.styles.HighlightBg.Render(line)
	}
	return line
}

// MatchKindLabel returns the short tag shown next to a result
func MatchKindLabel(kind domain.MatchKind) string {
	switch kind {
	case domain.MatchTitle:
		return "标题"
	case domain.MatchAuthor:
		return "作者"
	default:
		return "诗句"
	}
}
