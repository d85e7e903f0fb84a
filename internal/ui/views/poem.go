package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"poemdeck/internal/domain"
)

// cellWidth is the column width of one full-width glyph
const cellWidth = 2

// PoemRenderer handles rendering of the poem card
type PoemRenderer struct {
	styles *Styles
}

// NewPoemRenderer creates a new poem renderer
func NewPoemRenderer(styles *Styles) *PoemRenderer {
	return &PoemRenderer{
		styles: styles,
	}
}

// CardOptions controls how a poem card is laid out
type CardOptions struct {
	Vertical  bool
	ShowImage bool
	MaxHeight int // 0 means unbounded
	MaxWidth  int // 0 means unbounded
}

// RenderCard renders the poem with its title, byline, seal and lines
func (pr *PoemRenderer) RenderCard(poem domain.Poem, opts CardOptions) string {
	var body string
	if opts.Vertical && fitsVertically(poem, opts.MaxHeight) {
		body = pr.renderVertical(poem)
		// one column per line, so long poems overflow narrow terminals
		if opts.MaxWidth > 0 && lipgloss.Width(body)+pr.styles.Card.GetHorizontalFrameSize() > opts.MaxWidth {
			body = ""
		}
	}
	if body == "" {
		body = pr.renderHorizontal(poem)
	}

	if opts.ShowImage && poem.Image != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", pr.styles.Image.Render("🖼 "+poem.Image))
	}
	return pr.styles.Card.Render(body)
}

func (pr *PoemRenderer) renderHorizontal(poem domain.Poem) string {
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		pr.styles.PoemTitle.Render(poem.Title),
		"  ",
		pr.styles.Seal.Render(poem.SealGlyph()),
	)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(pr.styles.Byline.Render(poem.Byline()))
	b.WriteString("\n\n")

	for i, line := range poem.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pr.styles.Line.Render(line))
	}
	return b.String()
}

// renderVertical lays the lines out as top-to-bottom columns, read right to left,
// with the title and byline as the rightmost columns
func (pr *PoemRenderer) renderVertical(poem domain.Poem) string {
	columns := make([]string, 0, len(poem.Lines)+3)
	columns = append(columns, poem.Title, "", poem.Author)
	columns = append(columns, poem.Lines...)

	grid := VerticalColumns(columns)
	seal := pr.styles.Seal.Render(poem.SealGlyph())
	return lipgloss.JoinVertical(lipgloss.Right,
		pr.styles.Line.Render(grid),
		"",
		seal,
	)
}

// VerticalColumns turns each string into a column of glyphs. The first string
// becomes the rightmost column. Every cell is padded to a full-width cell so
// mixed-width runes stay aligned.
func VerticalColumns(columns []string) string {
	if len(columns) == 0 {
		return ""
	}

	runes := make([][]rune, len(columns))
	height := 0
	for i, col := range columns {
		runes[i] = []rune(col)
		if len(runes[i]) > height {
			height = len(runes[i])
		}
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		cells := make([]string, 0, len(columns))
		for col := len(columns) - 1; col >= 0; col-- {
			cell := ""
			if row < len(runes[col]) {
				cell = string(runes[col][row])
			}
			cells = append(cells, runewidth.FillRight(cell, cellWidth))
		}
		rows[row] = strings.TrimRight(strings.Join(cells, " "), " ")
	}
	return strings.Join(rows, "\n")
}

func fitsVertically(poem domain.Poem, maxHeight int) bool {
	if maxHeight <= 0 {
		return true
	}
	longest := len([]rune(poem.Title))
	if n := len([]rune(poem.Author)); n > longest {
		longest = n
	}
	for _, line := range poem.Lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	// seal row, spacer and card border/padding
	return longest+6 <= maxHeight
}

// RenderNavigation renders the "‹ N / total ›" pager with disabled ends dimmed
func (pr *PoemRenderer) RenderNavigation(index, total int, hasPrev, hasNext bool) string {
	prev := pr.styles.NavDisabled.Render("‹")
	if hasPrev {
		prev = pr.styles.NavEnabled.Render("‹")
	}
	next := pr.styles.NavDisabled.Render("›")
	if hasNext {
		next = pr.styles.NavEnabled.Render("›")
	}
	counter := pr.styles.Counter.Render(fmt.Sprintf("%d / %d", index+1, total))
	return fmt.Sprintf("%s  %s  %s", prev, counter, next)
}

// PlainText renders a poem for the pager and the list command
func PlainText(poem domain.Poem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]\n", poem.Title, poem.SealGlyph())
	fmt.Fprintf(&b, "%s\n\n", poem.Byline())
	for _, line := range poem.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if poem.Image != "" {
		fmt.Fprintf(&b, "\n%s\n", poem.Image)
	}
	return b.String()
}
