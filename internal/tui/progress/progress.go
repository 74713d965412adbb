// Package progress shows a spinner while a blocking filesystem task runs.
package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skill-transfer/skill-transfer/internal/tui/theme"
)

// Reporter receives updates from a running task.
type Reporter interface {
	// Status replaces the text next to the spinner.
	Status(text string)
	// Warn prints a persistent warning line above the spinner.
	Warn(text string)
}

// Task is the work shown under the spinner.
type Task func(r Reporter) error

// Runner runs tasks, with a spinner when animated is true and plain
// output otherwise.
type Runner struct {
	out      io.Writer
	animated bool
}

// New creates a Runner writing to out.
func New(out io.Writer, animated bool) *Runner {
	return &Runner{out: out, animated: animated}
}

// Run executes task and returns its error. The spinner is cleared when the
// task finishes.
func (r *Runner) Run(ctx context.Context, title string, task Task) error {
	if !r.animated {
		return task(plainReporter{out: r.out})
	}

	m := newModel(title)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(r.out),
		tea.WithInput(nil),
	)

	go func() {
		err := task(programReporter{p: p})
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("running spinner: %w", err)
	}
	return final.(model).err
}

type statusMsg string

type warnMsg string

type doneMsg struct{ err error }

type model struct {
	spinner spinner.Model
	text    string
	done    bool
	err     error
}

func newModel(title string) model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Cursor),
	)
	return model{spinner: s, text: title}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.text = string(msg)
		return m, nil
	case warnMsg:
		return m, tea.Println(theme.FormatWarning(string(msg)))
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + " " + m.text
}

type programReporter struct {
	p *tea.Program
}

func (r programReporter) Status(text string) { r.p.Send(statusMsg(text)) }

func (r programReporter) Warn(text string) { r.p.Send(warnMsg(text)) }

type plainReporter struct {
	out io.Writer
}

func (plainReporter) Status(string) {}

func (r plainReporter) Warn(text string) {
	fmt.Fprintln(r.out, theme.FormatWarning(text))
}
