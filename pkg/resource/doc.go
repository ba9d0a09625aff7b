// Package resource exposes the currently active resource as a set of
// independently queryable context key facts, kept consistent by a single
// synchronizer.
//
// Responsibilities:
//   - Facts owns the eight resource fact keys and is their only writer;
//     every derivation lands as one buffered change event.
//   - CapabilityService and LanguageResolver stay behind interfaces supplied
//     by consumers; SchemeRegistry and ExtensionResolver are the in-process
//     implementations.
//   - ParseMetaData is a standalone helper for data-URI attribute paths and
//     has no coupling to the synchronizer.
//
// Data flow:
//
//	host -> Facts.Set(uri) -> ctxkeys.Service (one ChangeEvent, eight keys)
//	CapabilityService.OnDidChange -> Facts -> isFileSystemResource{,OrUntitled}
//
// Invariants:
//
//	isFileSystemResourceOrUntitled == isFileSystemResource || scheme == "untitled"
//	no resource held => resource facts absent, resourceSet == false
package resource
