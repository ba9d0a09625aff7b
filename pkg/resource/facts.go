package resource

import (
	"errors"
	"sync"

	ctxkeys "github.com/goliatone/go-contextkeys"
)

var (
	// ErrNilService indicates Facts was constructed without a key service.
	ErrNilService = errors.New("resource: context key service is required")
	// ErrNilCapabilities indicates Facts was constructed without a
	// capability service.
	ErrNilCapabilities = errors.New("resource: capability service is required")
	// ErrNilLanguages indicates Facts was constructed without a language
	// resolver.
	ErrNilLanguages = errors.New("resource: language resolver is required")
)

// Facts keeps the derived facts about the currently active resource in sync
// inside a context key service. Every Set writes all eight facts as one
// buffered change, so observers never see one fact lag another; capability
// changes re-derive only the two filesystem facts for whichever resource is
// currently held.
//
// Set, Clear, Reset, and Get never fail: an absent resource is a fully
// supported state, not an error.
type Facts struct {
	mu       sync.Mutex
	disposed bool
	held     URI
	hasHeld  bool

	service      ctxkeys.Service
	capabilities CapabilityService
	languages    LanguageResolver
	subscription ctxkeys.Disposable

	scheme       ctxkeys.Binding
	filename     ctxkeys.Binding
	langID       ctxkeys.Binding
	resource     ctxkeys.Binding
	extname      ctxkeys.Binding
	set          ctxkeys.Binding
	fs           ctxkeys.Binding
	fsOrUntitled ctxkeys.Binding
}

// NewFacts binds the fact keys into service and subscribes to capability
// changes. The collaborators are shared, injected dependencies whose
// lifetimes outlive the synchronizer; Facts owns only its key bindings and
// the capability subscription.
func NewFacts(service ctxkeys.Service, capabilities CapabilityService, languages LanguageResolver) (*Facts, error) {
	if service == nil {
		return nil, ErrNilService
	}
	if capabilities == nil {
		return nil, ErrNilCapabilities
	}
	if languages == nil {
		return nil, ErrNilLanguages
	}
	f := &Facts{
		service:      service,
		capabilities: capabilities,
		languages:    languages,
		scheme:       service.Bind(KeyResourceScheme),
		filename:     service.Bind(KeyResourceFilename),
		langID:       service.Bind(KeyResourceLangID),
		resource:     service.Bind(KeyResource),
		extname:      service.Bind(KeyResourceExtname),
		set:          service.Bind(KeyResourceSet),
		fs:           service.Bind(KeyIsFileSystemResource),
		fsOrUntitled: service.Bind(KeyIsFileSystemResourceOrUntitled),
	}
	f.subscription = capabilities.OnDidChange(f.onCapabilitiesChanged)
	return f, nil
}

// Set derives and writes all eight facts for uri as one buffered change. A
// zero URI is treated as Clear.
func (f *Facts) Set(uri URI) {
	if uri.IsZero() {
		f.Clear()
		return
	}
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.held = uri
	f.hasHeld = true
	f.mu.Unlock()

	f.service.BufferChanges(func() {
		f.scheme.Set(uri.Scheme)
		f.filename.Set(Basename(uri.Path))
		if id := f.languages.Resolve(uri.Path); id != "" {
			f.langID.Set(id)
		} else {
			f.langID.Reset()
		}
		f.resource.Set(uri)
		f.extname.Set(Extname(uri.Path))
		f.set.Set(true)
		fs := f.capabilities.CanHandle(uri)
		f.fs.Set(fs)
		f.fsOrUntitled.Set(fs || uri.Scheme == SchemeUntitled)
	})
}

// Clear writes the absent-resource state: the five resource facts become
// absent, resourceSet and both filesystem facts become false.
func (f *Facts) Clear() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.held = URI{}
	f.hasHeld = false
	f.mu.Unlock()

	f.service.BufferChanges(func() {
		f.scheme.Reset()
		f.filename.Reset()
		f.langID.Reset()
		f.resource.Reset()
		f.extname.Reset()
		f.set.Set(false)
		f.fs.Set(false)
		f.fsOrUntitled.Set(false)
	})
}

// Reset restores every fact to its declared default and drops the held
// resource, returning the fact set to its construction-time state.
func (f *Facts) Reset() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.held = URI{}
	f.hasHeld = false
	f.mu.Unlock()

	f.service.BufferChanges(func() {
		f.scheme.Reset()
		f.filename.Reset()
		f.langID.Reset()
		f.resource.Reset()
		f.extname.Reset()
		f.set.Reset()
		f.fs.Reset()
		f.fsOrUntitled.Reset()
	})
}

// Get returns the currently held resource. Pure read, no side effects.
func (f *Facts) Get() (URI, bool) {
	f.mu.Lock()
	held, has := f.held, f.hasHeld
	f.mu.Unlock()
	return held, has
}

// Dispose cancels the capability subscription and stops all further writes.
// Idempotent; a notification delivered after Dispose is a no-op.
func (f *Facts) Dispose() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.disposed = true
	subscription := f.subscription
	f.subscription = nil
	f.mu.Unlock()

	if subscription != nil {
		subscription.Dispose()
	}
}

// onCapabilitiesChanged re-derives only the two filesystem facts for the
// currently held resource. The other five facts are intrinsic to the
// resource and never change from this trigger.
func (f *Facts) onCapabilitiesChanged() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	held, has := f.held, f.hasHeld
	f.mu.Unlock()

	fs := has && f.capabilities.CanHandle(held)
	f.service.BufferChanges(func() {
		f.fs.Set(fs)
		f.fsOrUntitled.Set(fs || (has && held.Scheme == SchemeUntitled))
	})
}
