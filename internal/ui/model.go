package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"poemdeck/internal/clock"
	"poemdeck/internal/config"
	"poemdeck/internal/domain"
	"poemdeck/internal/eventbus"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui/input"
	inputtypes "poemdeck/internal/ui/input/types"
	"poemdeck/internal/ui/services/navigation"
	"poemdeck/internal/ui/services/search"
	"poemdeck/internal/ui/state"
	"poemdeck/internal/ui/viewmodels"
	"poemdeck/internal/ui/views"
)

// statusTTL is how long a status message stays on screen
const statusTTL = 3 * time.Second

// Model represents the UI state. It is the single consumer of selection changes
// and runs the card fade when one arrives.
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	store     logic.Collection
	scheduler clock.Scheduler
	state     *state.AppState

	keys KeyMap

	// Handlers
	navigation   *navigation.Service
	search       *search.Service
	inputHandler *input.Handler
	inputCtx     *input.ModelContext
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
}

// NewModel creates a new UI model over store. Timers go through scheduler,
// which in the running program is a ProgramScheduler.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.Collection, scheduler clock.Scheduler) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		scheduler:    scheduler,
		state:        state.NewAppState(store.Current(), store.CurrentIndex()),
		keys:         DefaultKeyMap(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
	}

	m.navigation = navigation.NewService(store, scheduler, m,
		navigation.WithCooldown(cfg.Timing.NavigationCooldown.Std()),
		navigation.WithBus(bus),
	)
	m.search = search.NewService(store, scheduler, m,
		search.WithDebounce(cfg.Timing.SearchDebounce.Std()),
		search.WithBus(bus),
	)
	m.inputCtx = &input.ModelContext{Search: m.search}
	m.helpRenderer = NewHelpRenderer(m.keys)

	m.viewModel = viewmodels.NewViewModel(m.state, cfg, store, m.search, m.inputHandler)
	m.viewModel.SetHelp(help.New(), m.keys, searchKeyMap{m.keys})

	return m
}

// OnSelectionChanged implements events.SelectionListener. A selection that
// arrives mid-fade restarts the fade toward the newest poem.
func (m *Model) OnSelectionChanged(poem domain.Poem) {
	index, ok := m.store.IndexOfID(poem.ID)
	if !ok {
		index = m.store.CurrentIndex()
	}

	m.state.StopFade()
	if !m.config.UI.Animate {
		m.state.Show(poem, index)
		return
	}

	m.state.Phase = state.FadeOut
	m.state.Target = poem
	m.state.FadeTimer = m.scheduler.AfterFunc(m.config.Timing.FadeOut.Std(), func() {
		m.state.Show(m.state.Target, index)
		m.state.Phase = state.FadeIn
		m.state.FadeTimer = m.scheduler.AfterFunc(m.config.Timing.FadeIn.Std(), func() {
			m.state.Phase = state.FadeIdle
			m.state.FadeTimer = nil
		})
	})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("poemdeck")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerFiredMsg:
		msg.timer.fire()
		return m, nil

	case pagerClosedMsg:
		m.state.InPagerMode = false
		if msg.err != nil {
			slog.Error("pager failed", slog.String("pager", msg.name), slog.Any("error", msg.err))
			return m, m.setStatus(fmt.Sprintf("无法打开%s: %v", msg.name, msg.err))
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.InPagerMode {
		return m, nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputCtx)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.OpenSearchAction:
		m.search.Open()

	case inputtypes.ToggleSearchAction:
		m.search.Toggle()
		if !m.search.IsOpen() {
			m.inputHandler.Reset()
		}

	case inputtypes.UpdateTextAction:
		m.search.OnQueryChanged(a.Text)

	case inputtypes.HighlightAction:
		if a.Delta > 0 {
			m.search.HighlightNext()
		} else {
			m.search.HighlightPrev()
		}

	case inputtypes.SelectHighlightedAction:
		if m.search.SelectHighlighted() {
			m.inputHandler.Reset()
		}

	case inputtypes.CloseSearchAction:
		m.search.Escape()
		m.inputHandler.Reset()

	case inputtypes.ShowHelpAction:
		return m.openPager("帮助", m.helpRenderer.RenderHelpContent())

	case inputtypes.ViewPoemAction:
		return m.openPager("全文", views.PlainText(m.store.Current()))

	case inputtypes.QuitAction:
		m.state.StopFade()
		return tea.Quit

	default:
		slog.Debug("unhandled action", slog.String("type", action.Type()))
	}
	return nil
}

// openPager hands the terminal to ov until it exits
func (m *Model) openPager(name, content string) tea.Cmd {
	m.state.InPagerMode = true
	return tea.Exec(newPagerCommand(content), func(err error) tea.Msg {
		return pagerClosedMsg{name: name, err: err}
	})
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
