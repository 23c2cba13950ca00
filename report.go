// Per-run accounting of which images were inlined and which failed, and why.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Report accumulates per-document image outcomes for one batch run.
// A given (document, reference) pair lands in exactly one of the two
// maps: the rewriter records at most one outcome per <img> element.
// Constructed once per run and passed by reference; never persisted
// between runs.
type Report struct {
	success map[string][]string
	fail    map[string]map[string]string
}

func NewReport() *Report {
	return &Report{
		success: make(map[string][]string),
		fail:    make(map[string]map[string]string),
	}
}

// Success records an inlined image reference for a document, preserving
// the order in which references were processed.
func (r *Report) Success(doc, ref string) {
	r.success[doc] = append(r.success[doc], ref)
}

// Failure records why an image reference could not be inlined.
func (r *Report) Failure(doc, ref, reason string) {
	if r.fail[doc] == nil {
		r.fail[doc] = make(map[string]string)
	}
	r.fail[doc][ref] = reason
}

// reportJSON is the serialized shape: two mappings keyed by document path.
type reportJSON struct {
	Success map[string][]string          `json:"success"`
	Fail    map[string]map[string]string `json:"fail"`
}

// WriteJSON writes the report as indented JSON to w.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{Success: r.success, Fail: r.fail})
}

// SaveToFile persists the JSON report to path.
func (r *Report) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteText writes a human-readable per-document summary to w,
// documents and failure reasons in sorted order.
func (r *Report) WriteText(w io.Writer) {
	docs := make(map[string]bool)
	for d := range r.success {
		docs[d] = true
	}
	for d := range r.fail {
		docs[d] = true
	}
	for _, d := range slices.Sorted(maps.Keys(docs)) {
		fmt.Fprintf(w, "%s: %d inlined, %d failed\n", d, len(r.success[d]), len(r.fail[d]))
		for _, ref := range slices.Sorted(maps.Keys(r.fail[d])) {
			fmt.Fprintf(w, "  %s: %s\n", ref, r.fail[d][ref])
		}
	}
}
