// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// SurfaceFactory creates a surface from options.
type SurfaceFactory func(opts Options) (Surface, error)

// RegistryEntry describes a registered surface kind.
type RegistryEntry struct {
	// Name is the unique identifier ("image", "record").
	Name string

	// Priority orders entries for NewSurface; higher wins.
	Priority int

	// Factory creates new surfaces of this kind.
	Factory SurfaceFactory
}

// globalRegistry is the default registry holding the built-in kinds.
var globalRegistry = NewRegistry()

// Registry maps names to surface factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a surface kind to the global registry.
func Register(name string, priority int, factory SurfaceFactory) {
	globalRegistry.Register(name, priority, factory)
}

// List returns the names in the global registry, highest priority first.
func List() []string {
	return globalRegistry.List()
}

// NewSurface creates a surface of the highest-priority kind in the global
// registry.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface of the named kind from the global
// registry.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Register adds or replaces a surface kind.
func (r *Registry) Register(name string, priority int, factory SurfaceFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = &RegistryEntry{
		Name:     name,
		Priority: priority,
		Factory:  factory,
	}
}

// Unregister removes a surface kind.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns the registered names, highest priority first and by name
// among equal priorities.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// NewSurface tries each kind in priority order and returns the first
// surface created without error.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.List()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface of the named kind. A non-nil
// BackgroundColor in opts is painted before the surface is returned.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	s, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.BackgroundColor != nil {
		s.Clear(opts.BackgroundColor)
	}
	return s, nil
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface kinds are
	// registered.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named surface kind is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// init registers the built-in surface kinds.
func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	})
	Register("record", 0, func(opts Options) (Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	})
}
