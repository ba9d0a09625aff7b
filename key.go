package ctxkeys

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Key describes a single named context key: its host-visible name, the value
// it holds before anything writes it, and a human-readable description used
// when exporting key documentation.
type Key struct {
	Name        string
	Default     any
	Description string
}

// NewKey builds a key descriptor. Descriptors are plain values; binding one to
// a Service is what makes it live.
func NewKey(name string, defaultValue any, description string) Key {
	return Key{
		Name:        name,
		Default:     defaultValue,
		Description: description,
	}
}

// ErrDuplicateKey indicates a registry already holds a descriptor under the
// same name.
var ErrDuplicateKey = errors.New("ctxkeys: key already registered")

// ErrKeyNameRequired indicates a descriptor without a name.
var ErrKeyNameRequired = errors.New("ctxkeys: key name must not be empty")

// KeyInfo is the exportable shape of a registered key descriptor.
type KeyInfo struct {
	Name        string `json:"name"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Registry indexes key descriptors by name so hosts can document which
// context keys exist and what they default to.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]Key
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]Key)}
}

// Register stores the descriptor, guarding against duplicates.
func (r *Registry) Register(key Key) error {
	if key.Name == "" {
		return ErrKeyNameRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.keys == nil {
		r.keys = make(map[string]Key)
	}
	if _, exists := r.keys[key.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key.Name)
	}
	r.keys[key.Name] = key
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Key, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[name]
	return key, ok
}

// Names returns the registered key names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.keys))
	for name := range r.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the registered descriptors sorted by name, in a shape
// suitable for JSON export.
func (r *Registry) Describe() []KeyInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.keys))
	for name := range r.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	infos := make([]KeyInfo, 0, len(names))
	for _, name := range names {
		key := r.keys[name]
		infos = append(infos, KeyInfo{
			Name:        key.Name,
			Default:     key.Default,
			Description: key.Description,
		})
	}
	return infos
}

// DescribeJSON serialises the registry contents for documentation tooling.
func (r *Registry) DescribeJSON() ([]byte, error) {
	return json.Marshal(r.Describe())
}
