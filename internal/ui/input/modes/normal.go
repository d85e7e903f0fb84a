package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"poemdeck/internal/ui/input/types"
)

// ggTimeout is how long a first 'g' waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true
	case tea.KeyLeft, tea.KeyUp:
		return navigate("prev"), true
	case tea.KeyRight, tea.KeyDown:
		return navigate("next"), true
	case tea.KeyHome:
		return navigate("first"), true
	case tea.KeyEnd:
		return navigate("last"), true
	case tea.KeyEnter:
		return []types.Action{types.ViewPoemAction{}}, true
	case tea.KeyEsc:
		if ctx.SearchOpen() {
			return []types.Action{types.CloseSearchAction{}}, true
		}
		return nil, true
	}

	switch key {
	case "h", "k":
		return navigate("prev"), true

	case "l", "j", " ":
		return navigate("next"), true

	case "g":
		if m.lastKeyWasG && m.now().Sub(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return navigate("first"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true

	case "G":
		return navigate("last"), true

	case "ctrl+f":
		if ctx.SearchOpen() {
			return []types.Action{types.ToggleSearchAction{}}, true
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeSearch},
			types.ToggleSearchAction{},
		}, true

	case "/":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeSearch},
			types.OpenSearchAction{},
		}, true

	case "v":
		return []types.Action{types.ViewPoemAction{}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
