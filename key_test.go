package ctxkeys

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistryRejectsDuplicatesAndEmptyNames(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewKey("resourceScheme", nil, "scheme")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Register(NewKey("resourceScheme", nil, "again")); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if err := registry.Register(Key{}); !errors.Is(err, ErrKeyNameRequired) {
		t.Fatalf("expected ErrKeyNameRequired, got %v", err)
	}
}

func TestRegistryDescribeSortsByName(t *testing.T) {
	registry := NewRegistry()
	for _, key := range []Key{
		NewKey("resourceSet", false, "active resource present"),
		NewKey("resourceScheme", nil, "scheme"),
	} {
		if err := registry.Register(key); err != nil {
			t.Fatalf("register %s: %v", key.Name, err)
		}
	}

	if got := registry.Names(); !reflect.DeepEqual(got, []string{"resourceScheme", "resourceSet"}) {
		t.Fatalf("unexpected names: %v", got)
	}

	infos := registry.Describe()
	if len(infos) != 2 || infos[0].Name != "resourceScheme" || infos[1].Default != false {
		t.Fatalf("unexpected describe output: %+v", infos)
	}

	if key, ok := registry.Lookup("resourceSet"); !ok || key.Default != false {
		t.Fatalf("unexpected lookup result: %+v (found=%v)", key, ok)
	}
	if _, ok := registry.Lookup("missing"); ok {
		t.Fatalf("lookup of unknown key must fail")
	}
}
