package strategy

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// Registry maps handler names, as referenced from schedule files, to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under name. Names are unique.
func (r *Registry) Register(name string, handler Handler) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidParameter, "handler name must not be empty")
	}

	if handler == nil {
		return errors.Newf(errors.ErrCodeInvalidParameter, "handler %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return errors.Newf(errors.ErrCodeDuplicateHandler, "handler %q is already registered", name)
	}

	r.handlers[name] = handler

	return nil
}

// MustRegister is Register that panics on error. Intended for init-time wiring.
func (r *Registry) MustRegister(name string, handler Handler) {
	if err := r.Register(name, handler); err != nil {
		panic(err)
	}
}

// Get looks up a handler by name.
func (r *Registry) Get(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[name]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeUnknownHandler, "no handler registered as %q", name)
	}

	return handler, nil
}

// Names returns the registered handler names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
