// Classification of <img> src references: remote URL, data URI, or
// candidate local path. Pure string functions, no I/O.
package main

import "strings"

// isRemoteURL reports whether the reference points at a remote HTTP(S)
// resource. Remote images are never fetched.
func isRemoteURL(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// isDataURI reports whether the reference is already an embedded data URI.
func isDataURI(ref string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ref)), "data:")
}

// cleanPath strips the parts of a reference that have no filesystem
// meaning: the fragment first, then the query string, then a leading
// file:// scheme. No percent-decoding is performed.
func cleanPath(ref string) string {
	cleaned := strings.TrimSpace(ref)
	if i := strings.IndexByte(cleaned, '#'); i >= 0 {
		cleaned = cleaned[:i]
	}
	if i := strings.IndexByte(cleaned, '?'); i >= 0 {
		cleaned = cleaned[:i]
	}
	if len(cleaned) >= 7 && strings.EqualFold(cleaned[:7], "file://") {
		cleaned = cleaned[7:]
	}
	return cleaned
}
