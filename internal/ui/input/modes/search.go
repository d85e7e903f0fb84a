package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"poemdeck/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "搜索: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyDown:
		return []types.Action{types.HighlightAction{Delta: 1}}, true
	case tea.KeyUp:
		return []types.Action{types.HighlightAction{Delta: -1}}, true
	case tea.KeyEnter:
		return []types.Action{types.SelectHighlightedAction{}}, true
	case tea.KeyCtrlF:
		return []types.Action{types.ToggleSearchAction{}}, true
	case tea.KeyTab:
		// Leave the input but keep the panel and its query
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
