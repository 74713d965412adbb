package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/pathutil"
	"github.com/skill-transfer/skill-transfer/internal/skill"
)

// AntigravityID is the registry id of the Antigravity adapter.
const AntigravityID = "antigravity"

// Antigravity installs skills as Antigravity workflows. Each skill folder's
// entries are copied flat into the workflows directory with SKILL.md
// renamed to <folder>.md, which is also the installed-status marker.
type Antigravity struct {
	home   string
	logger *slog.Logger
}

// NewAntigravity creates the adapter rooted at the given home directory.
func NewAntigravity(home string, logger *slog.Logger) *Antigravity {
	if logger == nil {
		logger = slog.Default()
	}
	return &Antigravity{home: home, logger: logger.With("tool", AntigravityID)}
}

// GlobalDir is ~/.gemini/antigravity/global_workflows.
func (a *Antigravity) GlobalDir() string {
	return filepath.Join(a.home, ".gemini", "antigravity", "global_workflows")
}

// TargetDir returns the global workflows dir or <projectRoot>/.agent/workflows.
func (a *Antigravity) TargetDir(mode Mode, projectRoot string) (string, error) {
	switch mode {
	case ModeGlobal:
		return a.GlobalDir(), nil
	case ModeLocal:
		if strings.TrimSpace(projectRoot) == "" {
			return "", fmt.Errorf("local mode requires a project path")
		}
		return filepath.Join(projectRoot, ".agent", "workflows"), nil
	default:
		return "", fmt.Errorf("unsupported import mode %q", mode)
	}
}

// Import copies every top-level entry of sourcePath into the target dir.
func (a *Antigravity) Import(sourcePath, projectRoot string, mode Mode) (*ImportReport, error) {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolving skill path: %w", err)
	}
	folder := filepath.Base(absSource)

	targetDir, err := a.TargetDir(mode, projectRoot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory: %w", err)
	}

	entries, err := os.ReadDir(absSource)
	if err != nil {
		return nil, fmt.Errorf("reading skill directory: %w", err)
	}

	report := &ImportReport{Skill: folder, TargetDir: targetDir}
	for _, entry := range entries {
		name := entry.Name()
		targetName := name
		if name == skill.ManifestName {
			targetName = folder + ".md"
		}

		src := filepath.Join(absSource, name)
		dst := filepath.Join(targetDir, targetName)
		if err := copyEntry(src, dst); err != nil {
			return report, fmt.Errorf("copying %s: %w", name, err)
		}
		report.Files = append(report.Files, FileCopy{Source: src, Target: dst})
		a.logger.Debug("copied skill entry", "skill", folder, "from", name, "to", targetName)
	}

	a.logger.Info("skill imported", "skill", folder, "mode", string(mode), "target", targetDir)
	return report, nil
}

// IsInstalled reports whether <global>/<name>.md exists.
func (a *Antigravity) IsInstalled(name string) (bool, error) {
	return pathutil.Exists(a.markerPath(name))
}

// ListInstalled returns the sorted names of *.md files in the global dir.
// A missing dir means nothing is installed.
func (a *Antigravity) ListInstalled() ([]string, error) {
	entries, err := os.ReadDir(a.GlobalDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading global workflows: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes <global>/<name>.md. Other files copied alongside it are
// left in place since they may be shared between workflows.
func (a *Antigravity) Delete(name string) error {
	path := a.markerPath(name)
	exists, err := pathutil.Exists(path)
	if err != nil {
		return serrors.DeleteFailed(name, err)
	}
	if !exists {
		return serrors.DeleteNotInstalled(name).WithCause(ErrNotInstalled)
	}
	if err := os.Remove(path); err != nil {
		return serrors.DeleteFailed(name, err)
	}
	a.logger.Info("skill deleted", "skill", name)
	return nil
}

func (a *Antigravity) markerPath(name string) string {
	return filepath.Join(a.GlobalDir(), name+".md")
}
