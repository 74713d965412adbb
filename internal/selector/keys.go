package selector

// Key is a key class understood by the state machine.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeySpace
	KeyDelete
	KeyEnter
	KeyQuit
	KeyConfig
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyDelete: "delete",
	KeyEnter:  "enter",
	KeyQuit:   "quit",
	KeyConfig: "config",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}

// Terminal key names per class, as reported by bubbletea's KeyMsg.String.
var keyBindings = map[Key][]string{
	KeyUp:     {"up", "k", "ctrl+p"},
	KeyDown:   {"down", "j", "ctrl+n"},
	KeySpace:  {" ", "space"},
	KeyDelete: {"d", "delete", "backspace"},
	KeyEnter:  {"enter"},
	KeyQuit:   {"q"},
	KeyConfig: {"c"},
}

// Bindings returns the terminal key names that map to k.
func Bindings(k Key) []string {
	names := keyBindings[k]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ParseKey classifies a terminal key name. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	for k, names := range keyBindings {
		for _, n := range names {
			if n == name {
				return k
			}
		}
	}
	return KeyOther
}
