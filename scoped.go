package ctxkeys

// ScopedService layers a child key set over a parent Service: writes through
// the child shadow the parent, reads fall back to it, and snapshots merge
// parent-then-child so the stronger layer wins. Hosts use one scoped service
// per nested UI region (an editor pane over the window, a widget over the
// pane) while sharing the parent's keys.
type ScopedService struct {
	parent Service
	local  *MemoryService

	events    listenerSet
	localSub  Disposable
	parentSub Disposable
}

// NewScopedService builds a child service over parent. The child forwards its
// own change events plus any parent events for keys it does not shadow.
func NewScopedService(parent Service) *ScopedService {
	s := &ScopedService{
		parent: parent,
		local:  NewMemoryService(),
	}
	s.localSub = s.local.OnDidChange(func(event ChangeEvent) {
		s.events.notify(event)
	})
	s.parentSub = parent.OnDidChange(func(event ChangeEvent) {
		names := make([]string, 0, len(event.keys))
		for name := range event.keys {
			if _, shadowed := s.local.Get(name); shadowed {
				continue
			}
			names = append(names, name)
		}
		if len(names) > 0 {
			s.events.notify(newChangeEvent(names...))
		}
	})
	return s
}

// Bind implements Service. Bound keys live in the child layer.
func (s *ScopedService) Bind(key Key) Binding {
	return s.local.Bind(key)
}

// Get implements Service, preferring the child layer.
func (s *ScopedService) Get(name string) (any, bool) {
	if value, ok := s.local.Get(name); ok {
		return value, true
	}
	return s.parent.Get(name)
}

// Snapshot implements Service: the parent snapshot overlaid with child values.
func (s *ScopedService) Snapshot() map[string]any {
	snapshot := s.parent.Snapshot()
	for name, value := range s.local.Snapshot() {
		snapshot[name] = value
	}
	return snapshot
}

// OnDidChange implements Service.
func (s *ScopedService) OnDidChange(listener ChangeListener) Disposable {
	return s.events.add(listener)
}

// BufferChanges implements Service for writes against the child layer.
func (s *ScopedService) BufferChanges(fn func()) {
	s.local.BufferChanges(fn)
}

// Dispose detaches the child from the parent's change feed. Child values stay
// readable but no further events are forwarded.
func (s *ScopedService) Dispose() {
	if s.parentSub != nil {
		s.parentSub.Dispose()
	}
	if s.localSub != nil {
		s.localSub.Dispose()
	}
}
