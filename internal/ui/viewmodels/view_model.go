package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"poemdeck/internal/config"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui/input"
	inputtypes "poemdeck/internal/ui/input/types"
	"poemdeck/internal/ui/services/search"
	"poemdeck/internal/ui/state"
	"poemdeck/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	store  logic.Collection
	search *search.Service
	input  *input.Handler
	help   help.Model
	keys   help.KeyMap
	// footer bindings while the search input has focus
	searchKeys help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, store logic.Collection, searchSvc *search.Service, inputHandler *input.Handler) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		store:  store,
		search: searchSvc,
		input:  inputHandler,
	}
}

// SetHelp sets the help model and the bindings it renders per mode
func (vm *ViewModel) SetHelp(helpModel help.Model, keys, searchKeys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
	vm.searchKeys = searchKeys
}

// SetDimensions sets the terminal size used by the footer
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.state.Width = width
	vm.state.Height = height
	vm.help.Width = width
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Poem:          vm.state.Displayed,
		Index:         vm.state.DisplayedIndex,
		Total:         vm.store.Count(),
		HasPrev:       vm.store.HasPrev(),
		HasNext:       vm.store.HasNext(),
		Dimmed:        vm.state.Dimmed(),
		Vertical:      vm.config.UI.Vertical,
		ShowImage:     vm.config.UI.ShowImage,
		SearchOpen:    vm.search.IsOpen(),
		StatusMessage: vm.state.StatusMessage,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}

	if vm.input.CurrentMode() == inputtypes.ModeSearch && vm.searchKeys != nil {
		vs.Keys = vm.searchKeys
	}

	if vs.SearchOpen {
		vs.Search = views.SearchPanelState{
			Prompt:         vm.input.Prompt(),
			Input:          vm.input.TextInput().View(),
			Focused:        vm.input.CurrentMode() == inputtypes.ModeSearch,
			ResultsVisible: vm.search.ResultsVisible(),
			Results:        vm.search.Results(),
			Highlighted:    vm.search.Highlighted(),
		}
	}
	return vs
}
