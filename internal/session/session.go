// Package session drives the interactive loop: resolve the source
// directory, scan it, show the skill list and apply the chosen action.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skill-transfer/skill-transfer/internal/adapter"
	"github.com/skill-transfer/skill-transfer/internal/cli"
	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/logging"
	"github.com/skill-transfer/skill-transfer/internal/pathutil"
	"github.com/skill-transfer/skill-transfer/internal/selector"
	"github.com/skill-transfer/skill-transfer/internal/skill"
	"github.com/skill-transfer/skill-transfer/internal/tui/progress"
)

// ErrNoSourceDir is returned when no usable source directory was supplied.
var ErrNoSourceDir = errors.New("skill source directory not set")

// Prompter asks the interactive questions. Implementations return
// selector.ErrInterrupted when the user aborts.
type Prompter interface {
	SourceDir(ctx context.Context) (string, error)
	Confirm(ctx context.Context, message string, defaultYes bool) (bool, error)
	SelectTarget(ctx context.Context, tools []adapter.Tool, preselect string) (string, error)
	SelectMode(ctx context.Context) (adapter.Mode, error)
	ProjectPath(ctx context.Context, defaultPath string) (string, error)
	Pause(ctx context.Context) error
	SelectSkills(ctx context.Context, choices []selector.Choice) (selector.Result, error)
}

// Scanner lists the skills of a source directory with installed status.
type Scanner interface {
	Scan(sourceDir string) ([]skill.Info, error)
}

// ConfigStore persists the source directory.
type ConfigStore interface {
	SourceDir() string
	SetSourceDir(dir string) error
}

// Registry resolves target tools.
type Registry interface {
	Tools() []adapter.Tool
	Lookup(id string) (adapter.Importer, error)
	Remover(id string) (adapter.Remover, error)
}

// Progress runs a blocking task behind a spinner.
type Progress interface {
	Run(ctx context.Context, title string, task progress.Task) error
}

// Deps are the collaborators of a Session.
type Deps struct {
	Prompter Prompter
	Printer  *cli.Printer
	Scanner  Scanner
	Store    ConfigStore
	Registry Registry
	Progress Progress
	Logger   *slog.Logger

	// Target is the tool whose global location defines "installed" and
	// receives deletes. It also preselects the target prompt.
	Target string

	// WorkDir is the default project path for local imports.
	WorkDir string
}

// Session is one interactive run.
type Session struct {
	Deps
}

// New creates a Session.
func New(deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Progress == nil {
		deps.Progress = progress.New(deps.Printer.Writer(), false)
	}
	return &Session{Deps: deps}
}

// Run loops until the user exits. A user abort ends the session with a
// goodbye and a nil error, whether it arrives as a ctrl+c key, a SIGINT
// cancelling ctx, or bubbletea's own interrupt. Directory resolution and
// scan failures are returned.
func (s *Session) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if interrupted(ctx, err) {
		s.Logger.Debug("session interrupted", "error", err)
		s.Printer.Goodbye()
		return nil
	}
	return err
}

func interrupted(ctx context.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, selector.ErrInterrupted), errors.Is(err, tea.ErrInterrupted):
		return true
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		return true
	}
	return false
}

func (s *Session) loop(ctx context.Context) error {
	s.Printer.Banner()

	sourceDir, err := s.resolveSourceDir(ctx)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Printer.Clear()
		s.Printer.Banner()
		s.Printer.SourceDir(pathutil.Shorten(sourceDir))

		skills, err := s.scan(ctx, sourceDir)
		if err != nil {
			s.Printer.Error("Scan failed")
			return err
		}

		if len(skills) == 0 {
			s.Printer.Warning("No skills found (requires SKILL.md file)")
			change, err := s.Prompter.Confirm(ctx, "Change skill source directory?", true)
			if err != nil {
				return err
			}
			if !change {
				return nil
			}
			if sourceDir, err = s.changeSourceDir(ctx, sourceDir); err != nil {
				return err
			}
			continue
		}

		s.Printer.Found(len(skills))

		res, err := s.Prompter.SelectSkills(ctx, selector.ChoicesFromSkills(skills))
		if err != nil {
			return err
		}
		s.Logger.Debug("selection made", "action", res.Action.String(), "skills", res.Names())

		switch res.Action {
		case selector.ActionExit:
			s.Printer.Goodbye()
			return nil
		case selector.ActionConfig:
			if sourceDir, err = s.changeSourceDir(ctx, sourceDir); err != nil {
				return err
			}
		case selector.ActionImport:
			if len(res.Selected) > 0 {
				if _, err := s.importSkills(ctx, res.Selected); err != nil {
					return err
				}
			}
		case selector.ActionDelete:
			if len(res.Selected) > 0 {
				if err := s.deleteSkill(ctx, res.Selected[0]); err != nil {
					return err
				}
			}
		}
	}
}

func (s *Session) scan(ctx context.Context, sourceDir string) ([]skill.Info, error) {
	var skills []skill.Info
	err := s.Progress.Run(ctx, "Scanning skills directory...", func(progress.Reporter) error {
		var err error
		skills, err = s.Scanner.Scan(sourceDir)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceDir, err)
	}
	return skills, nil
}

// resolveSourceDir returns the saved directory if it still validates,
// otherwise asks for a new one and saves it.
func (s *Session) resolveSourceDir(ctx context.Context) (string, error) {
	saved := s.Store.SourceDir()
	if saved == "" {
		s.Printer.Notice("First time setup - please set your skills directory")
		return s.askSourceDir(ctx, "Source directory saved: ")
	}

	dir, err := pathutil.ValidateDir(saved)
	if err == nil {
		return dir, nil
	}
	s.Logger.Warn("saved source directory is invalid", "source_dir", saved, "error", err)
	s.Printer.Warning("Previously saved directory is invalid: " + saved)
	return s.askSourceDir(ctx, "Source directory updated: ")
}

func (s *Session) changeSourceDir(ctx context.Context, current string) (string, error) {
	dir, err := s.askSourceDir(ctx, "Source directory updated: ")
	if errors.Is(err, ErrNoSourceDir) {
		return current, nil
	}
	return dir, err
}

func (s *Session) askSourceDir(ctx context.Context, savedMsg string) (string, error) {
	dir, err := s.Prompter.SourceDir(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dir) == "" {
		return "", ErrNoSourceDir
	}
	if err := s.Store.SetSourceDir(dir); err != nil {
		// The session can continue with an unsaved directory.
		s.Logger.Warn("could not persist source directory", "error", err)
		s.Printer.Warning(serrors.Message(err))
	} else {
		s.Printer.Success(savedMsg + dir)
	}
	return dir, nil
}

// BatchResult counts the outcome of an import batch.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// importSkills collects the target, mode and project, confirms, then
// imports each selected entry independently. A nil result means the batch
// was cancelled.
func (s *Session) importSkills(ctx context.Context, selected []selector.Choice) (*BatchResult, error) {
	s.Printer.Blank()

	tool, err := s.Prompter.SelectTarget(ctx, s.Registry.Tools(), s.Target)
	if err != nil {
		return nil, err
	}
	mode, err := s.Prompter.SelectMode(ctx)
	if err != nil {
		return nil, err
	}

	projectPath := s.WorkDir
	if mode == adapter.ModeLocal {
		if projectPath, err = s.Prompter.ProjectPath(ctx, s.WorkDir); err != nil {
			return nil, err
		}
	}

	destination := "Global"
	if mode == adapter.ModeLocal {
		destination = projectPath
	}
	names := make([]string, len(selected))
	for i, c := range selected {
		names[i] = c.Name
	}
	ok, err := s.Prompter.Confirm(ctx, fmt.Sprintf("Import [%s] to %s?", strings.Join(names, ", "), destination), true)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.Printer.Info("Cancelled")
		return nil, s.Prompter.Pause(ctx)
	}

	imp, err := s.Registry.Lookup(tool)
	if err != nil {
		// Rejected at the prompt already; reaching here is a registry mismatch.
		s.Printer.Error(serrors.Message(err))
		return nil, s.Prompter.Pause(ctx)
	}

	s.Printer.Blank()
	var result *BatchResult
	logger := logging.WithTool(s.Logger, tool, string(mode))
	err = s.Progress.Run(ctx, "Importing...", func(r progress.Reporter) error {
		result = ImportBatch(imp, selected, projectPath, mode, r, logger)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Printer.Blank()
	s.Printer.Success(fmt.Sprintf("Import complete! Success: %d, Failed: %d", result.Succeeded, result.Failed))
	return result, s.Prompter.Pause(ctx)
}

// ImportBatch imports each entry in order. A failure is counted and
// reported without stopping the remaining entries.
func ImportBatch(imp adapter.Importer, selected []selector.Choice, projectPath string, mode adapter.Mode, r progress.Reporter, logger *slog.Logger) *BatchResult {
	result := &BatchResult{}
	for _, c := range selected {
		r.Status("Importing: " + c.Name)
		if _, err := imp.Import(c.SourcePath, projectPath, mode); err != nil {
			result.Failed++
			logging.WithSkill(logger, c.Name, c.SourcePath).Warn("import failed",
				"error", serrors.ImportFailed(c.Name, err))
			r.Warn("Import failed: " + c.Name)
			continue
		}
		result.Succeeded++
	}
	return result
}

func (s *Session) deleteSkill(ctx context.Context, c selector.Choice) error {
	s.Printer.Blank()

	ok, err := s.Prompter.Confirm(ctx, fmt.Sprintf("Delete skill %q?", c.Name), false)
	if err != nil {
		return err
	}
	if !ok {
		s.Printer.Info("Cancelled")
		return s.Prompter.Pause(ctx)
	}

	if err := s.remove(c.Name); err != nil {
		s.Logger.Warn("delete failed", "skill", c.Name, "code", serrors.Code(err), "error", err)
		s.Printer.Error("Delete failed: " + serrors.Message(err))
	} else {
		s.Printer.Success("Deleted: " + c.Name)
	}
	return s.Prompter.Pause(ctx)
}

func (s *Session) remove(name string) error {
	rm, err := s.Registry.Remover(s.Target)
	if err != nil {
		return err
	}
	return rm.Delete(name)
}
