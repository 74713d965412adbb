package skill

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/pathutil"
)

// StatusChecker reports whether a skill name is present in a target tool's
// global install location.
type StatusChecker interface {
	IsInstalled(name string) (bool, error)
}

// Scanner enumerates skill folders under a source directory.
type Scanner struct {
	status StatusChecker
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil status checker reports every skill as
// not installed.
func NewScanner(status StatusChecker, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{status: status, logger: logger}
}

// Scan lists the non-hidden directories of sourceDir that contain a
// SKILL.md file, sorted by name. A missing source directory fails with
// SCAN_001. Installed status is queried once per entry.
func (s *Scanner) Scan(sourceDir string) ([]Info, error) {
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, serrors.ScanRead(sourceDir, err)
	}
	if !pathutil.IsDir(absDir) {
		return nil, serrors.ScanSourceMissing(absDir)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, serrors.ScanRead(absDir, err)
	}

	var skills []Info
	declared := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		skillPath := filepath.Join(absDir, name)
		ok, err := pathutil.Exists(filepath.Join(skillPath, ManifestName))
		if err != nil || !ok {
			continue
		}

		info := Info{Name: name, SourcePath: skillPath}

		if fm, err := LoadFrontmatter(skillPath); err != nil {
			s.logger.Debug("skill front matter unreadable", "skill", name, "error", err)
		} else {
			info.Description = fm.Description
			info.DeclaredName = fm.Name
		}

		if info.DeclaredName != "" {
			if other, dup := declared[info.DeclaredName]; dup {
				s.logger.Warn("two skill folders declare the same name",
					"name", info.DeclaredName, "first", other, "second", name)
			} else {
				declared[info.DeclaredName] = name
			}
		}

		if s.status != nil {
			installed, err := s.status.IsInstalled(name)
			if err != nil {
				s.logger.Warn("installed status unavailable", "skill", name, "error", err)
			}
			info.Installed = installed
		}

		skills = append(skills, info)
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})

	s.logger.Debug("scanned skill source", "dir", absDir, "count", len(skills))
	return skills, nil
}
