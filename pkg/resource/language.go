package resource

import "strings"

// LanguageResolver maps a resource path to a language identifier, returning
// "" when no language is known.
type LanguageResolver interface {
	Resolve(path string) string
}

// LanguageResolverFunc adapts a plain function to LanguageResolver.
type LanguageResolverFunc func(path string) string

// Resolve dispatches to the underlying function.
func (f LanguageResolverFunc) Resolve(path string) string {
	if f == nil {
		return ""
	}
	return f(path)
}

// ExtensionResolver resolves languages from lowercased file extensions.
type ExtensionResolver struct {
	languages map[string]string
}

// ExtensionResolverOption configures an ExtensionResolver.
type ExtensionResolverOption func(*ExtensionResolver)

// WithLanguage maps an extension (with or without the leading dot) to a
// language identifier, overriding any built-in entry.
func WithLanguage(ext, languageID string) ExtensionResolverOption {
	return func(r *ExtensionResolver) {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext == "" || languageID == "" {
			return
		}
		r.languages["."+ext] = languageID
	}
}

// NewExtensionResolver builds a resolver pre-loaded with a small table of
// common extensions.
func NewExtensionResolver(opts ...ExtensionResolverOption) *ExtensionResolver {
	r := &ExtensionResolver{
		languages: map[string]string{
			".go":   "go",
			".js":   "javascript",
			".mjs":  "javascript",
			".ts":   "typescript",
			".tsx":  "typescriptreact",
			".json": "json",
			".md":   "markdown",
			".yaml": "yaml",
			".yml":  "yaml",
			".toml": "toml",
			".py":   "python",
			".rs":   "rust",
			".sh":   "shellscript",
			".html": "html",
			".css":  "css",
			".sql":  "sql",
			".txt":  "plaintext",
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve implements LanguageResolver.
func (r *ExtensionResolver) Resolve(path string) string {
	ext := strings.ToLower(Extname(path))
	if ext == "" {
		return ""
	}
	return r.languages[ext]
}
