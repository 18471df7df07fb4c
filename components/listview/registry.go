package listview

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry stores list definitions loaded from manifests or code.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]ListDefinition
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: map[string]ListDefinition{},
	}
}

// RegisterDefinition stores or replaces a definition.
func (r *Registry) RegisterDefinition(def ListDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Code] = def
	return nil
}

// LoadManifest registers every list of a decoded manifest.
func (r *Registry) LoadManifest(doc *ListManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("listview: manifest document is nil")
	}
	for _, def := range doc.Lists {
		if err := r.RegisterDefinition(def); err != nil {
			return fmt.Errorf("listview: register list %s from %s: %w", def.Code, doc.Source, err)
		}
	}
	return nil
}

// LoadManifestFile reads and registers a manifest from disk.
func (r *Registry) LoadManifestFile(path string) (*ListManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifest(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Definition fetches a definition by code.
func (r *Registry) Definition(code string) (ListDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[code]
	return def, ok
}

// Definitions returns all definitions ordered by code.
func (r *Registry) Definitions() []ListDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ListDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b ListDefinition) int {
		return strings.Compare(a.Code, b.Code)
	})
	return defs
}
