// Package pathutil resolves user-typed paths and validates directories.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
)

// Expand expands a leading ~ to the current user's home directory.
// If ~ is not at the start or home directory cannot be determined, returns path unchanged.
func Expand(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}

// Shorten replaces the current user's home directory prefix with ~ for display.
func Shorten(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

// Resolve trims, expands ~ and makes the path absolute.
func Resolve(path string) (string, error) {
	path = Expand(strings.TrimSpace(path))
	return filepath.Abs(path)
}

// ValidateDir checks user input for a directory path and returns its absolute
// form. Empty input fails with PATH_001; a missing path or a regular file
// fails with PATH_002.
func ValidateDir(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", serrors.PathEmpty()
	}
	abs, err := Resolve(input)
	if err != nil {
		return "", serrors.PathNotDirectory(input).WithCause(err)
	}
	if !IsDir(abs) {
		return "", serrors.PathNotDirectory(abs)
	}
	return abs, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists. Stat errors other than not-exist are
// returned so callers can tell "absent" from "unreadable".
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
