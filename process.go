// Per-document orchestration: read with an encoding fallback, rewrite,
// pick a non-colliding output name, write UTF-8.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// defaultSuffix is appended to the input's stem to form the output name.
const defaultSuffix = "_ok"

// maxNameAttempts bounds the numbered-suffix retry loop in outputPath.
const maxNameAttempts = 999

var errOutputNamesExhausted = errors.New("too many output files")

// readHTMLFile reads a document as UTF-8, falling back to a
// byte-preserving ISO 8859-1 decode when the bytes are not valid UTF-8.
// The fallback maps every byte to a code point, so it cannot fail.
func readHTMLFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// outputPath computes a non-colliding sibling path for the rewritten
// document: stem+suffix first, then stem+suffix_2 .. stem+suffix_999.
func outputPath(input, suffix string) (string, error) {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)

	candidate := filepath.Join(dir, stem+suffix+ext)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	}
	for i := 2; i <= maxNameAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s%s_%d%s", stem, suffix, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s", errOutputNamesExhausted, filepath.Base(input))
}

// processFile rewrites one HTML document, writing the result beside the
// input. Document-level failures are recorded on the report under a
// pseudo-reference and abort this document only; the batch continues.
// Output is always written as UTF-8 regardless of the input encoding.
func processFile(path, suffix string, rep *Report) (string, error) {
	content, err := readHTMLFile(path)
	if err != nil {
		rep.Failure(path, "(file read)", "Could not read HTML file: "+err.Error())
		return "", err
	}

	result, err := newInliner(path, rep).rewrite(content)
	if err != nil {
		rep.Failure(path, "(parsing)", "Invalid HTML structure: "+err.Error())
		return "", err
	}

	out, err := outputPath(path, suffix)
	if err == nil {
		err = os.WriteFile(out, []byte(result), 0644)
	}
	if err != nil {
		rep.Failure(path, "(file write)", "Could not write output: "+err.Error())
		return "", err
	}
	return out, nil
}
