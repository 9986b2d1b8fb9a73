package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Registry keeps named creators and remembers which one is the default.
type Registry struct {
	mu          sync.RWMutex
	defaultName string
	creators    map[string]Creator
}

func NewRegistry(defaultName string) *Registry {
	return &Registry{
		defaultName: defaultName,
		creators:    make(map[string]Creator),
	}
}

// Register adds c under name, replacing any creator already stored there.
func (r *Registry) Register(name string, c Creator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[name] = c
}

func (r *Registry) Get(name string) (Creator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.creators[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCreatorNotFound, name)
}

func (r *Registry) Default() (Creator, error) {
	r.mu.RLock()
	name := r.defaultName
	r.mu.RUnlock()

	return r.Get(name)
}

// SetDefault fails when name has not been registered.
func (r *Registry) SetDefault(name string) error {
	if _, err := r.Get(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultName = name
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.creators))
	for name := range r.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
