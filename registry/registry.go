// Package registry maps the handler names used in command manifests to the
// compiled Go functions that implement them.
//
// A manifest binds a command to its behavior by name (run = "OnRemoteAdd");
// the registry is populated at startup and consulted while the manifest is
// loaded, so a dangling reference is caught before any argv is parsed.
package registry

import (
	"log/slog"
	"slices"

	"github.com/vk/cmdtree/command"
)

// Registry holds the registered handlers for a single application instance.
type Registry struct {
	handlers map[string]command.Handler
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]command.Handler)}
}

// Register adds a handler under the given name. Registering the same name
// twice is a programming error and panics.
func (r *Registry) Register(name string, h command.Handler) {
	if _, exists := r.handlers[name]; exists {
		panic("handler with name '" + name + "' already registered")
	}
	slog.Debug("Registering command handler.", "name", name)
	r.handlers[name] = h
}

// Lookup resolves a handler name.
func (r *Registry) Lookup(name string) (command.Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns every registered handler name, sorted, for error
// suggestions and parity reporting.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
