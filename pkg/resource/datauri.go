package resource

import "strings"

// MetaMIME is the reserved metadata key holding the MIME type of a data URI.
const MetaMIME = "mime"

// ParseMetaData extracts the MIME type and key/value attributes from a data
// URI whose path follows the shape
//
//	MIME;KEY:VALUE(;KEY:VALUE)*;base64,PAYLOAD
//
// Attributes live strictly between the first and last semicolon; tokens
// missing a key or value are skipped and later duplicate keys win. The MIME
// prefix, when non-empty, is stored under MetaMIME. Malformed paths degrade
// to a partial or empty map; the parser never fails.
func ParseMetaData(uri URI) map[string]string {
	meta := map[string]string{}
	p := uri.Path
	first := strings.Index(p, ";")
	if first < 0 {
		return meta
	}
	last := strings.LastIndex(p, ";")
	if first != last {
		for _, token := range strings.Split(p[first+1:last], ";") {
			key, value, ok := strings.Cut(token, ":")
			if !ok || key == "" || value == "" {
				continue
			}
			meta[key] = value
		}
	}
	if mime := p[:first]; mime != "" {
		meta[MetaMIME] = mime
	}
	return meta
}
