package adapter

import (
	"fmt"
	"strings"
	"sync"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
)

// Tool describes one entry of the target-tool menu. Unavailable tools are
// listed but cannot be resolved.
type Tool struct {
	ID        string
	Label     string
	Available bool
}

// Registry maps tool ids to adapter implementations. Ids are matched
// case-insensitively.
type Registry struct {
	mu       sync.RWMutex
	tools    []Tool
	adapters map[string]Importer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Importer),
	}
}

// Register adds a tool. A nil importer registers the tool as unavailable.
func (r *Registry) Register(id, label string, imp Importer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeID(id)
	tool := Tool{ID: key, Label: label, Available: imp != nil}
	for i, existing := range r.tools {
		if existing.ID == key {
			r.tools[i] = tool
			r.setLocked(key, imp)
			return
		}
	}
	r.tools = append(r.tools, tool)
	r.setLocked(key, imp)
}

func (r *Registry) setLocked(key string, imp Importer) {
	if imp == nil {
		delete(r.adapters, key)
		return
	}
	r.adapters[key] = imp
}

// Tools returns every registered tool in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Supported returns the ids of available tools.
func (r *Registry) Supported() []string {
	var ids []string
	for _, t := range r.Tools() {
		if t.Available {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Tool returns the menu entry for id.
func (r *Registry) Tool(id string) (Tool, bool) {
	key := normalizeID(id)
	for _, t := range r.Tools() {
		if t.ID == key {
			return t, true
		}
	}
	return Tool{}, false
}

// Lookup resolves id to its adapter. Unknown ids fail with ADAPTER_001,
// listed-but-disabled tools with ADAPTER_002.
func (r *Registry) Lookup(id string) (Importer, error) {
	key := normalizeID(id)

	r.mu.RLock()
	imp, ok := r.adapters[key]
	r.mu.RUnlock()
	if ok {
		return imp, nil
	}

	if _, listed := r.Tool(key); listed {
		return nil, serrors.AdapterUnavailable(key)
	}
	return nil, serrors.AdapterUnknown(id, r.Supported())
}

// Status resolves id to an adapter that can report installed skills.
func (r *Registry) Status(id string) (StatusQuerier, error) {
	imp, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	q, ok := imp.(StatusQuerier)
	if !ok {
		return nil, serrors.AdapterCapability(normalizeID(id), "installed-status queries")
	}
	return q, nil
}

// Remover resolves id to an adapter that can delete skills.
func (r *Registry) Remover(id string) (Remover, error) {
	imp, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	rm, ok := imp.(Remover)
	if !ok {
		return nil, serrors.AdapterCapability(normalizeID(id), "delete")
	}
	return rm, nil
}

// String renders the tool for menus.
func (t Tool) String() string {
	if t.Available {
		return t.Label
	}
	return fmt.Sprintf("%s (Coming soon)", t.Label)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
