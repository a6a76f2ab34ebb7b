// Package registry resolves a resource kind to its storage adapter and its
// REST/storage transformer. Both registries are populated once at start-up
// and read-only thereafter; resolving an unregistered kind is a deployment
// defect, reported as MissingInfrastructure and never as nil.
package registry

import (
	"sort"
	"sync"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
)

// Registry holds the adapter and transformer registrations for every kind
type Registry struct {
	mu           sync.RWMutex
	sealed       bool
	adapters     map[domain.ResourceKind]domain.StorageAdapter
	transformers map[domain.ResourceKind]domain.Transformer
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		adapters:     make(map[domain.ResourceKind]domain.StorageAdapter),
		transformers: make(map[domain.ResourceKind]domain.Transformer),
	}
}

// RegisterAdapter registers the storage adapter for a kind. Registering after
// Seal or registering the same kind twice panics: both are wiring bugs that
// must fail at start-up.
func (r *Registry) RegisterAdapter(kind domain.ResourceKind, adapter domain.StorageAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic("registry: RegisterAdapter after Seal")
	}
	if _, exists := r.adapters[kind]; exists {
		panic("registry: duplicate adapter registration for kind " + string(kind))
	}
	r.adapters[kind] = adapter
}

// RegisterTransformer registers the transformer for a kind
func (r *Registry) RegisterTransformer(kind domain.ResourceKind, transformer domain.Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic("registry: RegisterTransformer after Seal")
	}
	if _, exists := r.transformers[kind]; exists {
		panic("registry: duplicate transformer registration for kind " + string(kind))
	}
	r.transformers[kind] = transformer
}

// Seal makes the registry immutable
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Adapter resolves the storage adapter for a kind
func (r *Registry) Adapter(kind domain.ResourceKind) (domain.StorageAdapter, *errors.AppError) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[kind]
	if !ok {
		return nil, errors.ErrMissingInfrastructure(string(kind))
	}
	return adapter, nil
}

// Transformer resolves the transformer for a kind
func (r *Registry) Transformer(kind domain.ResourceKind) (domain.Transformer, *errors.AppError) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transformer, ok := r.transformers[kind]
	if !ok {
		return nil, errors.ErrMissingInfrastructure(string(kind))
	}
	return transformer, nil
}

// Kinds returns the kinds registered in both registries, sorted
func (r *Registry) Kinds() []domain.ResourceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.ResourceKind, 0, len(r.adapters))
	for kind := range r.adapters {
		if _, ok := r.transformers[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// AssertTotal verifies that every kind in the closed set resolves in both
// registries. Wiring calls this once after registration; a non-nil error
// means the deployment is inconsistent.
func (r *Registry) AssertTotal(kinds []domain.ResourceKind) *errors.AppError {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, kind := range kinds {
		if _, ok := r.adapters[kind]; !ok {
			return errors.ErrMissingInfrastructure(string(kind))
		}
		if _, ok := r.transformers[kind]; !ok {
			return errors.ErrMissingInfrastructure(string(kind))
		}
	}
	return nil
}
