package ctxkeys

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Disposable releases a subscription or binding. Dispose is idempotent and
// synchronous: once it returns, the released callback is never invoked again.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a plain function to Disposable.
type DisposableFunc func()

// Dispose invokes the underlying function when present.
func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// ChangeEvent reports which context keys changed in one mutation. Mutations
// wrapped in Service.BufferChanges surface as a single event carrying every
// affected key.
type ChangeEvent struct {
	keys map[string]struct{}
}

func newChangeEvent(names ...string) ChangeEvent {
	keys := make(map[string]struct{}, len(names))
	for _, name := range names {
		keys[name] = struct{}{}
	}
	return ChangeEvent{keys: keys}
}

// AffectsKey reports whether name was among the changed keys.
func (e ChangeEvent) AffectsKey(name string) bool {
	_, ok := e.keys[name]
	return ok
}

// Keys returns the changed key names in sorted order.
func (e ChangeEvent) Keys() []string {
	names := make([]string, 0, len(e.keys))
	for name := range e.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChangeListener receives change events from a Service.
type ChangeListener func(ChangeEvent)

// listenerSet fans out change events to subscribers. Subscriptions are keyed
// by UUID so removal is O(1) and independent of listener function identity.
type listenerSet struct {
	mu        sync.Mutex
	listeners map[string]ChangeListener
}

func (s *listenerSet) add(listener ChangeListener) Disposable {
	if listener == nil {
		return DisposableFunc(nil)
	}
	id := uuid.NewString()
	s.mu.Lock()
	if s.listeners == nil {
		s.listeners = make(map[string]ChangeListener)
	}
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return DisposableFunc(func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	})
}

// notify invokes every subscriber outside the set's lock so listeners may
// resubscribe or dispose without deadlocking.
func (s *listenerSet) notify(event ChangeEvent) {
	s.mu.Lock()
	snapshot := make([]ChangeListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		snapshot = append(snapshot, listener)
	}
	s.mu.Unlock()
	for _, listener := range snapshot {
		listener(event)
	}
}
