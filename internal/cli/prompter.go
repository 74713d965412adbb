package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/skill-transfer/skill-transfer/internal/adapter"
	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/pathutil"
	"github.com/skill-transfer/skill-transfer/internal/selector"
	"github.com/skill-transfer/skill-transfer/internal/tui/skillselect"
)

// Mode menu labels.
const (
	ModeGlobalLabel = "Global - Install to global directory"
	ModeLocalLabel  = "Local  - Install to a specific project"
)

// Prompter asks the interactive questions of a session using huh forms and
// the skill list program. Aborting any prompt returns selector.ErrInterrupted.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a Prompter bound to the given terminal streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return selector.ErrInterrupted
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// SourceDir asks for the skill source directory and returns it as an
// absolute path.
func (p *Prompter) SourceDir(ctx context.Context) (string, error) {
	var value string
	input := huh.NewInput().
		Title("Enter skill source directory path:").
		Placeholder("~/skills").
		Value(&value).
		Validate(ValidateDirectory)
	if err := p.run(ctx, input); err != nil {
		return "", err
	}
	return pathutil.ValidateDir(value)
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	value := defaultYes
	confirm := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := p.run(ctx, confirm); err != nil {
		return false, err
	}
	return value, nil
}

// SelectTarget lists every tool and returns the chosen id. Unavailable
// tools are shown but rejected by validation.
func (p *Prompter) SelectTarget(ctx context.Context, tools []adapter.Tool, preselect string) (string, error) {
	if len(tools) == 0 {
		return "", errors.New("no target tools registered")
	}

	options := make([]huh.Option[string], 0, len(tools))
	for _, t := range tools {
		options = append(options, huh.NewOption(t.String(), t.ID))
	}

	value := preselect
	sel := huh.NewSelect[string]().
		Title("Select target tool:").
		Options(options...).
		Value(&value).
		Validate(ValidateTarget(tools))
	if err := p.run(ctx, sel); err != nil {
		return "", err
	}
	return value, nil
}

// SelectMode asks for global or local installation.
func (p *Prompter) SelectMode(ctx context.Context) (adapter.Mode, error) {
	value := adapter.ModeGlobal
	sel := huh.NewSelect[adapter.Mode]().
		Title("Select import mode:").
		Options(
			huh.NewOption(ModeGlobalLabel, adapter.ModeGlobal),
			huh.NewOption(ModeLocalLabel, adapter.ModeLocal),
		).
		Value(&value)
	if err := p.run(ctx, sel); err != nil {
		return "", err
	}
	return value, nil
}

// ProjectPath asks for the project directory of a local import.
func (p *Prompter) ProjectPath(ctx context.Context, defaultPath string) (string, error) {
	value := defaultPath
	input := huh.NewInput().
		Title("Enter project path:").
		Value(&value).
		Validate(ValidateDirectory)
	if err := p.run(ctx, input); err != nil {
		return "", err
	}
	return pathutil.ValidateDir(value)
}

// Pause waits for Enter.
func (p *Prompter) Pause(ctx context.Context) error {
	var discard string
	input := huh.NewInput().
		Title("Press Enter to continue...").
		Value(&discard)
	return p.run(ctx, input)
}

// SelectSkills shows the skill list.
func (p *Prompter) SelectSkills(ctx context.Context, choices []selector.Choice) (selector.Result, error) {
	return skillselect.Run(ctx, choices, tea.WithInput(p.in), tea.WithOutput(p.out))
}

// ValidateDirectory returns the user-facing reason a path is rejected, or nil.
func ValidateDirectory(value string) error {
	if _, err := pathutil.ValidateDir(value); err != nil {
		return errors.New(serrors.Message(err))
	}
	return nil
}

// ValidateTarget rejects ids that are unknown or not yet available.
func ValidateTarget(tools []adapter.Tool) func(string) error {
	return func(id string) error {
		for _, t := range tools {
			if t.ID != id {
				continue
			}
			if !t.Available {
				return fmt.Errorf("%s is not available yet", t.Label)
			}
			return nil
		}
		return fmt.Errorf("unknown target tool %q", id)
	}
}
