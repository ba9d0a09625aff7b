package coerce

import "testing"

func TestBoolTruthiness(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "file", true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero float", 0.0, false},
		{"float", 0.5, true},
		{"empty slice", []string{}, false},
		{"slice", []string{"a"}, true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"k": 1}, true},
		{"nil pointer", (*int)(nil), false},
		{"struct", struct{}{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Bool(tc.value); got != tc.want {
				t.Fatalf("Bool(%v): expected %v, got %v", tc.value, tc.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	if s, ok := String("file"); !ok || s != "file" {
		t.Fatalf("expected string passthrough, got %q (ok=%v)", s, ok)
	}
	if _, ok := String(42); ok {
		t.Fatalf("expected non-string to report false")
	}
	if _, ok := String(nil); ok {
		t.Fatalf("expected nil to report false")
	}
}
