package skillselect

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skill-transfer/skill-transfer/internal/selector"
)

type keyMap struct {
	Interrupt key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Import    key.Binding
	Config    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	Up:        bind(selector.KeyUp, "↑", "up"),
	Down:      bind(selector.KeyDown, "↓", "down"),
	Toggle:    bind(selector.KeySpace, "space", "select"),
	Delete:    bind(selector.KeyDelete, "d", "delete"),
	Import:    bind(selector.KeyEnter, "enter", "import"),
	Config:    bind(selector.KeyConfig, "c", "config"),
	Quit:      bind(selector.KeyQuit, "q", "quit"),
}

func bind(k selector.Key, helpKey, helpDesc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(selector.Bindings(k)...),
		key.WithHelp(helpKey, helpDesc),
	)
}

// classify maps a key press to the state machine's key class.
func classify(msg tea.KeyMsg) selector.Key {
	switch {
	case key.Matches(msg, keys.Up):
		return selector.KeyUp
	case key.Matches(msg, keys.Down):
		return selector.KeyDown
	case key.Matches(msg, keys.Toggle):
		return selector.KeySpace
	case key.Matches(msg, keys.Delete):
		return selector.KeyDelete
	case key.Matches(msg, keys.Import):
		return selector.KeyEnter
	case key.Matches(msg, keys.Config):
		return selector.KeyConfig
	case key.Matches(msg, keys.Quit):
		return selector.KeyQuit
	default:
		return selector.KeyOther
	}
}
