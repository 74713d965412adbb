// Package adapter translates generic import and delete requests into the
// file layout a specific target tool expects.
package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects where an import lands.
type Mode string

const (
	// ModeGlobal installs into the tool's user-wide configuration location.
	ModeGlobal Mode = "global"
	// ModeLocal installs into a project directory supplied by the user.
	ModeLocal Mode = "local"
)

// ParseMode parses "global" or "local" case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGlobal:
		return ModeGlobal, nil
	case ModeLocal:
		return ModeLocal, nil
	default:
		return "", fmt.Errorf("mode must be %q or %q, got %q", ModeGlobal, ModeLocal, s)
	}
}

// ErrNotInstalled is returned by Delete when the skill is absent.
var ErrNotInstalled = errors.New("skill not installed")

// Importer is the capability every adapter provides.
type Importer interface {
	// TargetDir returns the directory Import writes into for the given mode.
	// projectRoot is ignored in global mode.
	TargetDir(mode Mode, projectRoot string) (string, error)

	// Import copies the skill folder at sourcePath into the tool's layout.
	Import(sourcePath, projectRoot string, mode Mode) (*ImportReport, error)
}

// StatusQuerier reports what is installed in the global location.
type StatusQuerier interface {
	IsInstalled(name string) (bool, error)
	ListInstalled() ([]string, error)
}

// Remover deletes a skill from the global location.
type Remover interface {
	Delete(name string) error
}

// FileCopy records one top-level entry copied by Import.
type FileCopy struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Renamed reports whether the entry was written under a different name.
func (f FileCopy) Renamed() bool {
	return filepath.Base(f.Source) != filepath.Base(f.Target)
}

// ImportReport describes a completed import.
type ImportReport struct {
	Skill     string     `json:"skill"`
	TargetDir string     `json:"target_dir"`
	Files     []FileCopy `json:"files"`
}
