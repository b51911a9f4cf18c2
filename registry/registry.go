// Package registry maps column type tags to the factories that build them.
//
// A host runtime looks a tag up once and routes column construction to the
// returned factory. Registration is explicit: nothing registers itself at
// import time, the host fills a Registry during startup.
//
//	reg := registry.New()
//	if err := reg.Register(dtype.Name, array.FromAny); err != nil {
//	    return err
//	}
//	col, err := reg.Construct("ragged", []any{[]int32{1, 2}, nil})
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/errs"
)

// Factory builds a column from element-by-element input.
type Factory func(elements []any, opts ...array.BuildOption) (array.Column, error)

// Registry is a concurrency-safe mapping from type tag to Factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates tag with factory. Registering a tag twice fails with
// errs.ErrAlreadyRegistered; an empty tag or nil factory fails with
// errs.ErrConfiguration.
func (r *Registry) Register(tag string, factory Factory) error {
	if tag == "" || factory == nil {
		return fmt.Errorf("%w: tag and factory are required", errs.ErrConfiguration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[tag]; exists {
		return fmt.Errorf("%w: %q", errs.ErrAlreadyRegistered, tag)
	}
	r.factories[tag] = factory

	return nil
}

// Lookup returns the factory registered for tag, or errs.ErrTypeParse.
func (r *Registry) Lookup(tag string) (Factory, error) {
	r.mu.RLock()
	factory, ok := r.factories[tag]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no column type registered for %q", errs.ErrTypeParse, tag)
	}

	return factory, nil
}

// Construct builds a column of type tag from elements.
func (r *Registry) Construct(tag string, elements []any, opts ...array.BuildOption) (array.Column, error) {
	factory, err := r.Lookup(tag)
	if err != nil {
		return nil, err
	}

	return factory(elements, opts...)
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	r.mu.RUnlock()

	slices.Sort(tags)

	return tags
}
