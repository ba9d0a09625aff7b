package ctxkeys

import (
	"reflect"
	"testing"
)

func TestScopedServiceShadowsParent(t *testing.T) {
	parent := NewMemoryService()
	parent.Bind(NewKey("resourceScheme", nil, "")).Set("file")
	parent.Bind(NewKey("resourceSet", false, "")).Set(true)

	child := NewScopedService(parent)
	defer child.Dispose()
	child.Bind(NewKey("resourceScheme", nil, "")).Set("untitled")

	if value, _ := child.Get("resourceScheme"); value != "untitled" {
		t.Fatalf("expected child value to win, got %v", value)
	}
	if value, _ := child.Get("resourceSet"); value != true {
		t.Fatalf("expected fall-through to parent, got %v", value)
	}
	if value, _ := parent.Get("resourceScheme"); value != "file" {
		t.Fatalf("child writes must not leak into the parent, got %v", value)
	}

	snapshot := child.Snapshot()
	want := map[string]any{"resourceScheme": "untitled", "resourceSet": true}
	if !reflect.DeepEqual(snapshot, want) {
		t.Fatalf("unexpected merged snapshot: %v", snapshot)
	}
}

func TestScopedServiceForwardsUnshadowedParentEvents(t *testing.T) {
	parent := NewMemoryService()
	child := NewScopedService(parent)
	defer child.Dispose()

	child.Bind(NewKey("resourceScheme", nil, "")).Set("untitled")

	var events []ChangeEvent
	child.OnDidChange(func(event ChangeEvent) {
		events = append(events, event)
	})

	parent.Bind(NewKey("resourceSet", false, "")).Set(true)
	parent.Bind(NewKey("resourceScheme", nil, "")).Set("file")

	if len(events) != 1 {
		t.Fatalf("expected only the unshadowed parent change, got %d events", len(events))
	}
	if got := events[0].Keys(); !reflect.DeepEqual(got, []string{"resourceSet"}) {
		t.Fatalf("unexpected forwarded keys: %v", got)
	}
}

func TestScopedServiceDisposeStopsForwarding(t *testing.T) {
	parent := NewMemoryService()
	child := NewScopedService(parent)

	fired := 0
	child.OnDidChange(func(ChangeEvent) { fired++ })

	child.Dispose()
	parent.Bind(NewKey("resourceSet", false, "")).Set(true)

	if fired != 0 {
		t.Fatalf("expected no events after dispose, got %d", fired)
	}
}
