// Package skillselect runs the skill list as a bubbletea program.
package skillselect

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skill-transfer/skill-transfer/internal/selector"
)

// Run shows the list until the user picks an action. ctrl+c returns
// selector.ErrInterrupted; a cancelled ctx returns ctx.Err().
func Run(ctx context.Context, choices []selector.Choice, opts ...tea.ProgramOption) (selector.Result, error) {
	state, err := selector.New(choices)
	if err != nil {
		return selector.Result{}, err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model{state: state}, opts...)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return selector.Result{}, ctxErr
		}
		return selector.Result{}, fmt.Errorf("running skill list: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return selector.Result{}, errors.New("unexpected final model")
	}
	return m.outcome()
}

type model struct {
	state       *selector.State
	interrupted bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.state.Status() == selector.StatusDone {
		return m, nil
	}
	if key.Matches(keyMsg, keys.Interrupt) {
		m.interrupted = true
		return m, tea.Quit
	}
	if _, done := m.state.HandleKey(classify(keyMsg)); done {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.interrupted {
		return ""
	}
	return m.state.View() + "\n"
}

func (m model) outcome() (selector.Result, error) {
	if m.interrupted {
		return selector.Result{}, selector.ErrInterrupted
	}
	res, done := m.state.Result()
	if !done {
		return selector.Result{}, errors.New("skill list closed without a selection")
	}
	return res, nil
}
