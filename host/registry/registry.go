// Package registry implements the asset registry the loader resolves
// descriptor references against.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/TBM13/ruffle/domain/ports"
)

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disable only for testing or
// hot-reloading.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry implements AssetRegistry. Safe for concurrent use.
type Registry struct {
	config   registryConfig
	scripts  sync.Map // map[string]struct{}
	ruleDocs sync.Map // map[string]struct{}
	assets   sync.Map // map[string]struct{}
}

// NewRegistry creates a new Registry with the given options.
func NewRegistry(opts ...RegistryOption) ports.AssetRegistry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// RegisterScript declares a script bundle by logical name.
func (r *Registry) RegisterScript(name string) error {
	return r.register(&r.scripts, "script", name)
}

// RegisterRuleDocument declares an externally maintained rule document.
func (r *Registry) RegisterRuleDocument(name string) error {
	return r.register(&r.ruleDocs, "rule document", name)
}

// RegisterAsset declares a bundled asset (page, icon, resource).
func (r *Registry) RegisterAsset(name string) error {
	return r.register(&r.assets, "asset", name)
}

func (r *Registry) register(m *sync.Map, kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if r.config.strictMode {
		if _, exists := m.Load(name); exists {
			return fmt.Errorf("%s %q already registered", kind, name)
		}
	}
	m.Store(name, struct{}{})
	return nil
}

// HasScript reports whether a script bundle is declared.
func (r *Registry) HasScript(name string) bool {
	_, ok := r.scripts.Load(name)
	return ok
}

// HasRuleDocument reports whether a rule document is declared.
func (r *Registry) HasRuleDocument(name string) bool {
	_, ok := r.ruleDocs.Load(name)
	return ok
}

// HasAsset reports whether a bundled asset is declared.
func (r *Registry) HasAsset(name string) bool {
	_, ok := r.assets.Load(name)
	return ok
}

// List returns the names of everything declared, sorted for determinism.
func (r *Registry) List() []string {
	var names []string
	collect := func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	}
	r.scripts.Range(collect)
	r.ruleDocs.Range(collect)
	r.assets.Range(collect)
	sort.Strings(names)
	return names
}
