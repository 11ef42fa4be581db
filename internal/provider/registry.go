package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/tinte/internal/logger"
)

// Registry holds providers by ID.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	logger    *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		logger:    log,
	}
}

// NewDefaultRegistry returns a registry with every built-in provider.
func NewDefaultRegistry(log *logger.Logger) *Registry {
	r := NewRegistry(log)
	for _, p := range Builtins() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds p to the registry.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider is nil")
	}
	meta := p.Metadata()
	if err := meta.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[meta.ID]; exists {
		return fmt.Errorf("provider '%s' already registered", meta.ID)
	}
	r.providers[meta.ID] = p
	r.logger.With("provider", meta.ID).Debug("provider registered")
	return nil
}

// Get returns the provider registered under id.
func (r *Registry) Get(id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	if !ok {
		return nil, ErrNotFound{ID: id}
	}
	return p, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[id]
	return ok
}

// IDs returns registered IDs sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := lo.Keys(r.providers)
	sort.Strings(ids)
	return ids
}

// List returns metadata for every provider, sorted by ID.
func (r *Registry) List() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Map(lo.Values(r.providers), func(p Provider, _ int) Metadata {
		return p.Metadata()
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
