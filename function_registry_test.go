package ctxkeys

import (
	"reflect"
	"testing"
)

func TestFunctionRegistryRegisterAndCall(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("hasExt", func(args ...any) (any, error) {
		return len(args) == 1 && args[0] == ".go", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := registry.Call("HasExt", ".go")
	if err != nil {
		t.Fatalf("call should be case-insensitive: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %v", result)
	}

	if _, err := registry.Call("missing"); err == nil {
		t.Fatalf("expected unknown function to error")
	}
}

func TestFunctionRegistryGuardsInvalidRegistrations(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("", func(...any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected empty name to error")
	}
	if err := registry.Register("fn", nil); err == nil {
		t.Fatalf("expected nil function to error")
	}
	if err := registry.Register("fn", func(...any) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("FN", func(...any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate (case-insensitive) to error")
	}
}

func TestFunctionRegistryCloneIsDetached(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("a", func(...any) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}

	clone := registry.Clone()
	if err := registry.Register("b", func(...any) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}

	if got := clone.Names(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected clone to keep its view, got %v", got)
	}
	if got := registry.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected registry names: %v", got)
	}
}
