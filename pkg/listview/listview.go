package listview

import (
	core "github.com/goliatone/go-listview/components/listview"
)

// Service exposes the underlying components/listview.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// ViewerContext re-export for convenience.
type ViewerContext = core.ViewerContext

// ListDefinition re-export for convenience.
type ListDefinition = core.ListDefinition

// ViewPayload re-export for convenience.
type ViewPayload = core.ViewPayload

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// LoadManifest reads a manifest file into a new registry.
func LoadManifest(path string) (*core.Registry, error) {
	registry := core.NewRegistry()
	if _, err := registry.LoadManifestFile(path); err != nil {
		return nil, err
	}
	return registry, nil
}
