package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap describes the bindings shown in the footer and the help pager.
// Dispatch itself happens in the input modes.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Search    key.Binding
	Highlight key.Binding
	Select    key.Binding
	Blur      key.Binding
	Close     key.Binding
	Poem      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings understood by the normal and search modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/h", "上一首"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j", " "),
			key.WithHelp("→/l", "下一首"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("gg/home", "第一首"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "最后一首"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "ctrl+f"),
			key.WithHelp("/", "搜索 (ctrl+f 开关)"),
		),
		Highlight: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "选择结果"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "跳转"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "离开输入框"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "关闭搜索"),
		),
		Poem: key.NewBinding(
			key.WithKeys("v", "enter"),
			key.WithHelp("v", "全文"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "帮助"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "退出"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.Poem, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Search, k.Highlight, k.Select, k.Blur, k.Close},
		{k.Poem, k.Help, k.Quit},
	}
}

// searchKeyMap is the footer while the search input has focus
type searchKeyMap struct {
	KeyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Highlight, k.Select, k.Blur, k.Close}
}
