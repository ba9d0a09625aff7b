package resource

import (
	"reflect"
	"testing"
)

func TestParseMetaDataExtractsAttributes(t *testing.T) {
	uri := MustParse("data:image/png;size:2313;label:SomeLabel;description:SomeDescription;base64,AAA")

	got := ParseMetaData(uri)
	want := map[string]string{
		MetaMIME:      "image/png",
		"size":        "2313",
		"label":       "SomeLabel",
		"description": "SomeDescription",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected metadata: %v", got)
	}
}

func TestParseMetaDataEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		path string
		want map[string]string
	}{
		{
			name: "no semicolons",
			path: "image/png",
			want: map[string]string{},
		},
		{
			name: "single semicolon keeps only mime",
			path: "image/png;base64,AAA",
			want: map[string]string{MetaMIME: "image/png"},
		},
		{
			name: "missing mime",
			path: ";size:1;base64,AAA",
			want: map[string]string{"size": "1"},
		},
		{
			name: "tokens without separator are skipped",
			path: "image/png;noseparator;size:1;base64,AAA",
			want: map[string]string{MetaMIME: "image/png", "size": "1"},
		},
		{
			name: "empty key or value are skipped",
			path: "image/png;:v;k:;size:1;base64,AAA",
			want: map[string]string{MetaMIME: "image/png", "size": "1"},
		},
		{
			name: "duplicate keys last wins",
			path: "image/png;a:1;a:2;base64,AAA",
			want: map[string]string{MetaMIME: "image/png", "a": "2"},
		},
		{
			name: "empty path",
			path: "",
			want: map[string]string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMetaData(URI{Scheme: SchemeData, Path: tc.path})
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected metadata for %q: %v", tc.path, got)
			}
		})
	}
}
