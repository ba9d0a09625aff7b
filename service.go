package ctxkeys

import (
	"reflect"
	"sync"
)

// Service stores named context key values and notifies subscribers when they
// change. Producers bind descriptors to obtain write handles; consumers read
// individual values or take a snapshot for expression evaluation.
type Service interface {
	// Bind returns the write handle for key. Binding does not write the
	// default; an unbound or reset key with a nil default reads as absent.
	Bind(key Key) Binding

	// Get returns the current value for name, reporting absence via ok.
	Get(name string) (any, bool)

	// Snapshot returns a detached copy of every present key/value pair.
	Snapshot() map[string]any

	// OnDidChange subscribes to change events. The returned Disposable
	// removes the subscription; disposal is idempotent.
	OnDidChange(listener ChangeListener) Disposable

	// BufferChanges runs fn, coalescing every change it causes into a single
	// event delivered after fn returns. Nested buffers flush at the
	// outermost level.
	BufferChanges(fn func())
}

// Binding is the write handle for a single bound context key. A key is only
// ever written through the handles produced by Bind, so the binder owns the
// key's lifecycle within the service.
type Binding interface {
	// Name returns the bound key's host-visible name.
	Name() string
	// Set writes value. Writing a value equal to the current one raises no
	// change event.
	Set(value any)
	// Reset restores the key to its declared default. A nil default makes
	// the key absent rather than present-with-nil.
	Reset()
	// Get returns the current value, or nil when the key is absent.
	Get() any
}

// entryHost is the mutation surface Entry needs from a Service
// implementation.
type entryHost interface {
	setValue(name string, value any)
	deleteValue(name string)
	Get(name string) (any, bool)
}

// Entry is the Binding implementation shared by MemoryService and
// ScopedService.
type Entry struct {
	key  Key
	host entryHost
}

// Name implements Binding.
func (e *Entry) Name() string {
	return e.key.Name
}

// Set implements Binding.
func (e *Entry) Set(value any) {
	e.host.setValue(e.key.Name, value)
}

// Reset implements Binding.
func (e *Entry) Reset() {
	if e.key.Default == nil {
		e.host.deleteValue(e.key.Name)
		return
	}
	e.host.setValue(e.key.Name, e.key.Default)
}

// Get implements Binding.
func (e *Entry) Get() any {
	value, _ := e.host.Get(e.key.Name)
	return value
}

// MemoryService is the in-process Service implementation: a mutex-guarded
// value map with buffered change delivery. It makes no persistence
// assumptions and is the implementation hosts embed unless they already have
// their own key store.
type MemoryService struct {
	mu      sync.Mutex
	values  map[string]any
	pending map[string]struct{}
	depth   int

	listeners listenerSet
}

// NewMemoryService constructs an empty service.
func NewMemoryService() *MemoryService {
	return &MemoryService{
		values: make(map[string]any),
	}
}

// Bind implements Service.
func (s *MemoryService) Bind(key Key) Binding {
	return &Entry{key: key, host: s}
}

// Get implements Service.
func (s *MemoryService) Get(name string) (any, bool) {
	s.mu.Lock()
	value, ok := s.values[name]
	s.mu.Unlock()
	return value, ok
}

// Snapshot implements Service.
func (s *MemoryService) Snapshot() map[string]any {
	s.mu.Lock()
	snapshot := make(map[string]any, len(s.values))
	for name, value := range s.values {
		snapshot[name] = value
	}
	s.mu.Unlock()
	return snapshot
}

// OnDidChange implements Service.
func (s *MemoryService) OnDidChange(listener ChangeListener) Disposable {
	return s.listeners.add(listener)
}

// BufferChanges implements Service.
func (s *MemoryService) BufferChanges(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.depth++
	s.mu.Unlock()

	fn()

	s.mu.Lock()
	s.depth--
	var names []string
	if s.depth == 0 && len(s.pending) > 0 {
		names = make([]string, 0, len(s.pending))
		for name := range s.pending {
			names = append(names, name)
		}
		s.pending = nil
	}
	s.mu.Unlock()

	if len(names) > 0 {
		s.listeners.notify(newChangeEvent(names...))
	}
}

func (s *MemoryService) setValue(name string, value any) {
	s.mu.Lock()
	current, exists := s.values[name]
	if exists && reflect.DeepEqual(current, value) {
		s.mu.Unlock()
		return
	}
	s.values[name] = value
	deferred := s.record(name)
	s.mu.Unlock()

	if !deferred {
		s.listeners.notify(newChangeEvent(name))
	}
}

func (s *MemoryService) deleteValue(name string) {
	s.mu.Lock()
	if _, exists := s.values[name]; !exists {
		s.mu.Unlock()
		return
	}
	delete(s.values, name)
	deferred := s.record(name)
	s.mu.Unlock()

	if !deferred {
		s.listeners.notify(newChangeEvent(name))
	}
}

// record notes a changed key, reporting whether delivery is deferred to the
// enclosing BufferChanges call. Callers must hold s.mu.
func (s *MemoryService) record(name string) bool {
	if s.depth == 0 {
		return false
	}
	if s.pending == nil {
		s.pending = make(map[string]struct{})
	}
	s.pending[name] = struct{}{}
	return true
}
