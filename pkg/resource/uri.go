package resource

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Reserved schemes the fact synchronizer cares about.
const (
	// SchemeFile denotes a disk-backed resource.
	SchemeFile = "file"
	// SchemeUntitled denotes an unsaved, in-memory document.
	SchemeUntitled = "untitled"
	// SchemeData denotes an inline data URI.
	SchemeData = "data"
)

// ErrEmptyURI indicates Parse received an empty string.
var ErrEmptyURI = errors.New("resource: uri must not be empty")

// URI identifies an editor-visible entity: a file, an untitled buffer, a
// remote document. It is a plain value, replaced wholesale rather than
// mutated in place.
type URI struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Parse builds a URI from its string form. Opaque forms such as
// "data:image/png;base64,..." keep the opaque part as the Path.
func Parse(raw string) (URI, error) {
	if raw == "" {
		return URI{}, ErrEmptyURI
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return URI{}, fmt.Errorf("resource: parse uri: %w", err)
	}
	uri := URI{
		Scheme:    parsed.Scheme,
		Authority: parsed.Host,
		Path:      parsed.Path,
		Query:     parsed.RawQuery,
		Fragment:  parsed.Fragment,
	}
	if parsed.Opaque != "" {
		uri.Path = parsed.Opaque
	}
	return uri, nil
}

// MustParse is Parse for compile-time-known inputs; it panics on error.
func MustParse(raw string) URI {
	uri, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return uri
}

// IsZero reports whether the URI denotes no resource at all.
func (u URI) IsZero() bool {
	return u.Scheme == "" && u.Authority == "" && u.Path == "" && u.Query == "" && u.Fragment == ""
}

// String renders the URI back into its canonical text form.
func (u URI) String() string {
	var sb strings.Builder
	if u.Scheme != "" {
		sb.WriteString(u.Scheme)
		sb.WriteString(":")
	}
	if u.Authority != "" || strings.HasPrefix(u.Path, "/") {
		sb.WriteString("//")
		sb.WriteString(u.Authority)
	}
	sb.WriteString(u.Path)
	if u.Query != "" {
		sb.WriteString("?")
		sb.WriteString(u.Query)
	}
	if u.Fragment != "" {
		sb.WriteString("#")
		sb.WriteString(u.Fragment)
	}
	return sb.String()
}

// Basename returns the last element of a posix-style path, or "" when the
// path has none.
func Basename(p string) string {
	if p == "" {
		return ""
	}
	base := path.Base(p)
	if base == "/" || base == "." {
		return ""
	}
	return base
}

// Extname returns the extension of the last path element including the
// leading dot, or "" when there is none.
func Extname(p string) string {
	return path.Ext(Basename(p))
}
