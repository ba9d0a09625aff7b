package resource

import "testing"

func TestExtensionResolverBuiltins(t *testing.T) {
	resolver := NewExtensionResolver()
	cases := []struct {
		path string
		want string
	}{
		{"/src/main.go", "go"},
		{"/src/app.ts", "typescript"},
		{"/docs/README.md", "markdown"},
		{"/src/MAIN.GO", "go"},
		{"/src/Makefile", ""},
		{"/src/main.zig", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := resolver.Resolve(tc.path); got != tc.want {
			t.Fatalf("Resolve(%q): expected %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestExtensionResolverOptions(t *testing.T) {
	resolver := NewExtensionResolver(
		WithLanguage("zig", "zig"),
		WithLanguage(".md", "mdx"), // overrides the builtin
		WithLanguage("", "ignored"),
		WithLanguage(".x", ""),
	)
	if got := resolver.Resolve("/src/main.zig"); got != "zig" {
		t.Fatalf("expected custom mapping, got %q", got)
	}
	if got := resolver.Resolve("/docs/README.md"); got != "mdx" {
		t.Fatalf("expected override to win, got %q", got)
	}
	if got := resolver.Resolve("/a.x"); got != "" {
		t.Fatalf("expected empty mapping to be ignored, got %q", got)
	}
}

func TestLanguageResolverFunc(t *testing.T) {
	resolver := LanguageResolverFunc(func(path string) string {
		return "plaintext"
	})
	if got := resolver.Resolve("/anything"); got != "plaintext" {
		t.Fatalf("expected plaintext, got %q", got)
	}

	var nilResolver LanguageResolverFunc
	if got := nilResolver.Resolve("/anything"); got != "" {
		t.Fatalf("expected nil func to resolve empty, got %q", got)
	}
}
