// Package registry holds the in-memory provider registry and the shared
// name-based lookup used by the orchestration services.
package registry

import (
	"sync"

	"github.com/galeriafora-cli/galeriafora/fault"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/provider"
	"golang.org/x/exp/slices"
)

var (
	ErrNilProvider       = fault.New("registry_nil_provider", "cannot register a nil provider")
	ErrZeroProviderInfo  = fault.New("registry_zero_provider_info", "cannot register a provider without info")
	ErrDuplicateProvider = fault.New("registry_duplicate_provider", "a provider with this name is already registered")
	ErrProviderNotFound  = fault.New("registry_provider_not_found", "no registered provider matches this name")
)

// InMemory is the default Registry implementation. Safe for concurrent use.
type InMemory struct {
	mu        sync.RWMutex
	providers []gallery.Provider
}

// New returns an empty registry.
func New() *InMemory {
	return &InMemory{}
}

// Register adds a provider. Names are unique after normalization;
// registering a second provider under the same name fails.
func (r *InMemory) Register(p gallery.Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	info := p.Info()
	if info.IsZero() {
		return ErrZeroProviderInfo
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.providers {
		if existing.Info().Name() == info.Name() {
			return ErrDuplicateProvider
		}
	}

	r.providers = append(r.providers, p)
	return nil
}

// Providers returns the registered providers in registration order.
func (r *InMemory) Providers() []gallery.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.providers)
}

// Find resolves a provider by raw name against any registry. The raw
// name is normalized before comparison, so "DanBooru!" finds "danbooru".
func Find(r gallery.Registry, raw string) (gallery.Provider, error) {
	name, err := provider.NewName(raw)
	if err != nil {
		return nil, err
	}

	for _, p := range r.Providers() {
		if p.Info().Name() == name {
			return p, nil
		}
	}

	return nil, ErrProviderNotFound
}
