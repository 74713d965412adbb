// Package selector implements the skill list state machine: a fixed set of
// choices, a circular cursor, per-row check marks and a single terminal
// result per invocation. It has no terminal dependency; drivers translate
// raw key events into Key values and print View.
package selector

import (
	"errors"

	"github.com/skill-transfer/skill-transfer/internal/skill"
)

// ErrInterrupted reports a user abort (ctrl+c). It is never folded into
// ActionExit.
var ErrInterrupted = errors.New("interrupted")

// ErrNoChoices is returned by New for an empty list.
var ErrNoChoices = errors.New("selector requires at least one choice")

// DeleteNotInstalledMsg is shown when delete is pressed on a row that is not
// installed.
const DeleteNotInstalledMsg = "Can only delete installed (●) skills"

// Action is the outcome of one prompt invocation.
type Action string

const (
	ActionImport Action = "import"
	ActionDelete Action = "delete"
	ActionConfig Action = "config"
	ActionExit   Action = "exit"
)

func (a Action) String() string { return string(a) }

// Status is the prompt lifecycle.
type Status int

const (
	StatusPending Status = iota
	StatusDone
)

func (s Status) String() string {
	if s == StatusDone {
		return "done"
	}
	return "pending"
}

// Choice is one row of the list.
type Choice struct {
	Name       string
	SourcePath string
	Installed  bool
	Checked    bool
}

// Result is produced exactly once, when the state reaches StatusDone.
// Selected is empty for config and exit, one entry for delete and one or
// more for import.
type Result struct {
	Action   Action
	Selected []Choice
}

// Names returns the names of the selected choices.
func (r Result) Names() []string {
	names := make([]string, len(r.Selected))
	for i, c := range r.Selected {
		names[i] = c.Name
	}
	return names
}

// ChoicesFromSkills builds unchecked rows from scan results.
func ChoicesFromSkills(infos []skill.Info) []Choice {
	choices := make([]Choice, len(infos))
	for i, info := range infos {
		choices[i] = Choice{
			Name:       info.Name,
			SourcePath: info.SourcePath,
			Installed:  info.Installed,
		}
	}
	return choices
}

// State is the prompt state for one invocation.
type State struct {
	choices []Choice
	cursor  int
	status  Status
	errMsg  string
	result  Result
}

// New creates a pending state with the cursor on the first row. The
// choices are copied and every Checked flag is reset.
func New(choices []Choice) (*State, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	own := make([]Choice, len(choices))
	copy(own, choices)
	for i := range own {
		own[i].Checked = false
	}
	return &State{choices: own}, nil
}

// HandleKey applies one key. It returns the result and true once the state
// is done; further keys are ignored and return the same result.
func (s *State) HandleKey(k Key) (Result, bool) {
	if s.status == StatusDone {
		return s.result, true
	}
	s.errMsg = ""

	n := len(s.choices)
	switch k {
	case KeyUp:
		s.cursor = (s.cursor - 1 + n) % n
	case KeyDown:
		s.cursor = (s.cursor + 1) % n
	case KeySpace:
		s.choices[s.cursor].Checked = !s.choices[s.cursor].Checked
	case KeyDelete:
		current := s.choices[s.cursor]
		if !current.Installed {
			s.errMsg = DeleteNotInstalledMsg
			return Result{}, false
		}
		current.Checked = true
		return s.finish(ActionDelete, []Choice{current})
	case KeyEnter:
		var selected []Choice
		for _, c := range s.choices {
			if c.Checked {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			current := s.choices[s.cursor]
			current.Checked = true
			selected = []Choice{current}
		}
		return s.finish(ActionImport, selected)
	case KeyQuit:
		return s.finish(ActionExit, []Choice{})
	case KeyConfig:
		return s.finish(ActionConfig, []Choice{})
	}
	return Result{}, false
}

func (s *State) finish(action Action, selected []Choice) (Result, bool) {
	s.status = StatusDone
	s.result = Result{Action: action, Selected: selected}
	return s.result, true
}

// Cursor returns the focused row index.
func (s *State) Cursor() int { return s.cursor }

// Status returns the lifecycle state.
func (s *State) Status() Status { return s.status }

// Err returns the pending validation message, or "".
func (s *State) Err() string { return s.errMsg }

// Result returns the terminal result and whether the state is done.
func (s *State) Result() (Result, bool) {
	return s.result, s.status == StatusDone
}

// Choices returns a copy of the rows.
func (s *State) Choices() []Choice {
	out := make([]Choice, len(s.choices))
	copy(out, s.choices)
	return out
}

// View renders the current state.
func (s *State) View() string {
	return Render(s.choices, s.cursor, s.errMsg)
}
