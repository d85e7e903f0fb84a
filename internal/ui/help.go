package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"浏览", []key.Binding{r.keys.Prev, r.keys.Next, r.keys.First, r.keys.Last}},
		{"搜索", []key.Binding{r.keys.Search, r.keys.Highlight, r.keys.Select, r.keys.Blur, r.keys.Close}},
		{"其他", []key.Binding{r.keys.Poem, r.keys.Help, r.keys.Quit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("poemdeck 帮助"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString(sectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, b := range section.bindings {
			keys := strings.Join(displayKeys(b.Keys()), ", ")
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(runewidth.FillRight(keys, 24)),
				descStyle.Render(b.Help().Desc)))
		}
		help.WriteString("\n")
	}

	hint := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(hint.Render("  搜索会匹配诗名、作者和诗句，按此顺序标注结果。"))

	return help.String()
}

func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}

// pagerCommand shows content in the ov pager; it satisfies tea.ExecCommand
type pagerCommand struct {
	content string
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

// Run takes over the terminal until the pager exits
func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself, so the program's streams are not used
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}
