package resource

import "testing"

func TestSchemeRegistryDefaultsToFile(t *testing.T) {
	registry := NewSchemeRegistry()
	if !registry.CanHandle(URI{Scheme: SchemeFile, Path: "/a"}) {
		t.Fatalf("expected file scheme to be handled by default")
	}
	if registry.CanHandle(URI{Scheme: SchemeUntitled, Path: "Untitled-1"}) {
		t.Fatalf("untitled must not be filesystem-capable")
	}
}

func TestSchemeRegistryNotifiesOnMembershipChanges(t *testing.T) {
	registry := NewSchemeRegistry(SchemeFile)

	fired := 0
	subscription := registry.OnDidChange(func() { fired++ })

	registry.RegisterScheme("remotefs")
	registry.RegisterScheme("remotefs") // already present, no event
	registry.DeregisterScheme("remotefs")
	registry.DeregisterScheme("remotefs") // already gone, no event
	registry.RegisterScheme("")           // ignored

	if fired != 2 {
		t.Fatalf("expected two notifications, got %d", fired)
	}

	subscription.Dispose()
	subscription.Dispose()
	registry.RegisterScheme("vault")
	if fired != 2 {
		t.Fatalf("expected no notifications after dispose, got %d", fired)
	}
	if !registry.CanHandle(URI{Scheme: "vault"}) {
		t.Fatalf("registration must still apply after subscriber disposal")
	}
}
