// Discovery of HTML input documents from file and directory arguments.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// isHTMLPath reports whether a path has an HTML file extension.
func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// findHTMLFiles expands a mix of file and directory arguments into a
// deduplicated, order-preserving list of absolute HTML file paths.
// Directories are walked recursively. Unusable arguments are warned
// about and skipped, never fatal.
func findHTMLFiles(args []string) []string {
	var found []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(logOut, "Warning: path does not exist: %s\n", arg)
			continue
		}
		if !info.IsDir() {
			if !isHTMLPath(arg) {
				fmt.Fprintf(logOut, "Warning: not an HTML file: %s\n", arg)
				continue
			}
			found = append(found, arg)
			continue
		}
		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isHTMLPath(path) {
				found = append(found, path)
			}
			return nil
		})
		if walkErr != nil {
			fmt.Fprintf(logOut, "Warning: could not scan %s: %v\n", arg, walkErr)
		}
	}

	seen := make(map[string]bool)
	var unique []string
	for _, f := range found {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = filepath.Clean(f)
		}
		if !seen[abs] {
			seen[abs] = true
			unique = append(unique, abs)
		}
	}
	return unique
}
