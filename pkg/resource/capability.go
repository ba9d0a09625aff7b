package resource

import (
	"sync"

	ctxkeys "github.com/goliatone/go-contextkeys"
	"github.com/google/uuid"
)

// CapabilityService answers whether a resource can be handled as a
// filesystem entity, and announces (without payload) when the answer for some
// scheme may have changed. Providers can register late, so filesystem-
// backed-ness is not a stable property of a URI.
type CapabilityService interface {
	CanHandle(uri URI) bool
	OnDidChange(listener func()) ctxkeys.Disposable
}

// SchemeRegistry is the in-process CapabilityService: a mutable set of
// schemes considered filesystem-capable. Registration and deregistration
// fire the change event.
type SchemeRegistry struct {
	mu        sync.Mutex
	schemes   map[string]struct{}
	listeners map[string]func()
}

// NewSchemeRegistry builds a registry over the given schemes; with none
// given, "file" is pre-registered.
func NewSchemeRegistry(schemes ...string) *SchemeRegistry {
	if len(schemes) == 0 {
		schemes = []string{SchemeFile}
	}
	r := &SchemeRegistry{
		schemes:   make(map[string]struct{}, len(schemes)),
		listeners: make(map[string]func()),
	}
	for _, scheme := range schemes {
		if scheme != "" {
			r.schemes[scheme] = struct{}{}
		}
	}
	return r
}

// CanHandle implements CapabilityService.
func (r *SchemeRegistry) CanHandle(uri URI) bool {
	r.mu.Lock()
	_, ok := r.schemes[uri.Scheme]
	r.mu.Unlock()
	return ok
}

// RegisterScheme marks scheme as filesystem-capable and notifies subscribers
// when that changes the set.
func (r *SchemeRegistry) RegisterScheme(scheme string) {
	if scheme == "" {
		return
	}
	r.mu.Lock()
	if _, exists := r.schemes[scheme]; exists {
		r.mu.Unlock()
		return
	}
	r.schemes[scheme] = struct{}{}
	r.mu.Unlock()
	r.notify()
}

// DeregisterScheme removes scheme from the capable set and notifies
// subscribers when that changes the set.
func (r *SchemeRegistry) DeregisterScheme(scheme string) {
	r.mu.Lock()
	if _, exists := r.schemes[scheme]; !exists {
		r.mu.Unlock()
		return
	}
	delete(r.schemes, scheme)
	r.mu.Unlock()
	r.notify()
}

// OnDidChange implements CapabilityService.
func (r *SchemeRegistry) OnDidChange(listener func()) ctxkeys.Disposable {
	if listener == nil {
		return ctxkeys.DisposableFunc(nil)
	}
	id := uuid.NewString()
	r.mu.Lock()
	if r.listeners == nil {
		r.listeners = make(map[string]func())
	}
	r.listeners[id] = listener
	r.mu.Unlock()

	var once sync.Once
	return ctxkeys.DisposableFunc(func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		})
	})
}

func (r *SchemeRegistry) notify() {
	r.mu.Lock()
	snapshot := make([]func(), 0, len(r.listeners))
	for _, listener := range r.listeners {
		snapshot = append(snapshot, listener)
	}
	r.mu.Unlock()
	for _, listener := range snapshot {
		listener()
	}
}
