// Local image loading and data URI encoding.
package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

// resolveImagePath turns a cleaned src reference into an absolute path.
// Relative references are resolved against the directory of the HTML
// document that contains them. Resolution is purely lexical.
func resolveImagePath(cleaned, baseDir string) string {
	p := cleaned
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// guessMIME returns the MIME type for an image file: extension lookup
// first, content sniffing second, application/octet-stream last.
// Parameters like "; charset=utf-8" are stripped so the result is a
// bare type/subtype suitable for a data URI.
func guessMIME(path string, data []byte) string {
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt = mimetype.Detect(data).String()
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	mt = strings.TrimSpace(mt)
	if mt == "" {
		mt = "application/octet-stream"
	}
	return mt
}

// encodeToDataURI reads a local image file and returns it as a
// base64-encoded data URI. Every call re-reads the file; identical
// references within one document are not cached.
func encodeToDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return dataurl.New(data, guessMIME(path, data)).String(), nil
}
