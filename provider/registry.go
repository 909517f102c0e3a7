package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skillsenselab/authd/fault"
)

// Registry is a thread-safe registry of named providers. Registration is
// explicit and validated at startup; resolving an unregistered type at use
// time is a server configuration fault, not a request fault, because only an
// operator can fix a missing registration.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under the given type string. Nil providers and
// duplicate registrations are rejected here rather than surfacing at first
// use.
func (r *Registry) Register(name string, p Provider) error {
	if name == "" {
		return fmt.Errorf("provider: type name is required")
	}
	if p == nil {
		return fmt.Errorf("provider: %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[name]; ok {
		return fmt.Errorf("provider: %q already registered", name)
	}
	r.providers[name] = p
	return nil
}

// Resolve returns the provider registered under the given type string, or a
// serverConfigurationError fault when none is registered.
func (r *Registry) Resolve(name string) (Provider, *fault.Error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fault.ServerConfig(fmt.Sprintf("no authentication provider registered for type %q", name))
	}
	return p, nil
}

// Names returns all registered provider types, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
