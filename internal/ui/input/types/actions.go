package types

// Navigation actions
type NavigateAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Search panel actions
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type CloseSearchAction struct{}

func (a CloseSearchAction) Type() string { return "close_search" }

// ToggleSearchAction opens a closed panel and closes an open one
type ToggleSearchAction struct{}

func (a ToggleSearchAction) Type() string { return "toggle_search" }

type HighlightAction struct {
	Delta int // -1 up, +1 down
}

func (a HighlightAction) Type() string { return "highlight" }

type SelectHighlightedAction struct{}

func (a SelectHighlightedAction) Type() string { return "select_highlighted" }

// Pager actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ViewPoemAction struct{}

func (a ViewPoemAction) Type() string { return "view_poem" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
