package resource

import ctxkeys "github.com/goliatone/go-contextkeys"

// Fact key descriptors for the active resource. The names are the exact
// identifiers the host's predicate engine references in when clauses.
var (
	KeyResourceScheme = ctxkeys.NewKey("resourceScheme", nil,
		"Scheme of the active resource")
	KeyResourceFilename = ctxkeys.NewKey("resourceFilename", nil,
		"Basename of the active resource's path")
	KeyResourceLangID = ctxkeys.NewKey("resourceLangId", nil,
		"Language identifier resolved for the active resource")
	KeyResource = ctxkeys.NewKey("resource", nil,
		"The active resource URI itself")
	KeyResourceExtname = ctxkeys.NewKey("resourceExtname", nil,
		"Extension of the active resource's path, including the dot")
	KeyResourceSet = ctxkeys.NewKey("resourceSet", false,
		"Whether any resource is active")
	KeyIsFileSystemResource = ctxkeys.NewKey("isFileSystemResource", false,
		"Whether the active resource can be handled as a filesystem entity")
	KeyIsFileSystemResourceOrUntitled = ctxkeys.NewKey("isFileSystemResourceOrUntitled", false,
		"Whether the active resource is filesystem-backed or an untitled buffer")
)

// Keys returns every fact descriptor the synchronizer owns, for registration
// with a ctxkeys.Registry.
func Keys() []ctxkeys.Key {
	return []ctxkeys.Key{
		KeyResourceScheme,
		KeyResourceFilename,
		KeyResourceLangID,
		KeyResource,
		KeyResourceExtname,
		KeyResourceSet,
		KeyIsFileSystemResource,
		KeyIsFileSystemResourceOrUntitled,
	}
}
