package adapter

import (
	"fmt"
	"log/slog"
	"os"
)

// NewDefaultRegistry registers the built-in tools. Only Antigravity is
// implemented; the others are listed as coming soon.
func NewDefaultRegistry(home string, logger *slog.Logger) *Registry {
	r := NewRegistry()
	r.Register(AntigravityID, "Antigravity (Google Gemini)", NewAntigravity(home, logger))
	r.Register("claude", "Claude Code", nil)
	r.Register("cursor", "Cursor", nil)
	r.Register("codex", "Codex", nil)
	return r
}

// NewRegistryForUser builds the default registry rooted at the current
// user's home directory.
func NewRegistryForUser(logger *slog.Logger) (*Registry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return NewDefaultRegistry(home, logger), nil
}
