// Compact display names for progress lines.
package main

import "path/filepath"

// shortPath returns a compact display form of a filesystem path: the
// last two components, truncated to 60 characters with "..." if needed.
func shortPath(path string) string {
	display := filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path))
	if len(display) > 60 {
		display = "..." + display[len(display)-57:]
	}
	return display
}
