// Streaming HTML rewriter: reconstructs every tag as received except
// <img>, whose local src references are replaced with base64 data URIs.
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// inliner consumes lexical events from an HTML tokenizer and appends
// reconstructed markup to an output buffer. It never builds a tree, so
// unbalanced or unknown tags pass through untouched.
type inliner struct {
	doc     string // document path, used as the report key
	baseDir string // directory of the document, for relative src resolution
	report  *Report
	out     bytes.Buffer
}

// newInliner returns a rewriter bound to one document and the shared
// batch report. One instance handles one document pass.
func newInliner(doc string, report *Report) *inliner {
	return &inliner{doc: doc, baseDir: filepath.Dir(doc), report: report}
}

// rewrite runs a single tokenizer pass over src and returns the
// reconstructed document. Text, comments and declarations pass through
// as raw bytes; tags are rebuilt from their parsed form. The only error
// is a tokenizer failure, which voids the whole document.
func (in *inliner) rewrite(src string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return in.out.String(), nil
		case html.TextToken, html.CommentToken, html.DoctypeToken:
			in.out.Write(z.Raw())
		case html.StartTagToken:
			in.handleTag(z.Token(), false)
		case html.SelfClosingTagToken:
			in.handleTag(z.Token(), true)
		case html.EndTagToken:
			tok := z.Token()
			in.out.WriteString("</")
			in.out.WriteString(tok.Data)
			in.out.WriteByte('>')
		}
	}
}

func (in *inliner) handleTag(tok html.Token, selfClosing bool) {
	if tok.Data == "img" {
		in.handleImg(tok, selfClosing)
		return
	}
	rebuildTag(&in.out, tok, selfClosing)
}

// rebuildTag re-emits a tag from its parsed name and attributes. The
// tokenizer lowercases names; attribute order is preserved. Attributes
// with an empty value come back as bare names.
func rebuildTag(out *bytes.Buffer, tok html.Token, selfClosing bool) {
	out.WriteByte('<')
	out.WriteString(tok.Data)
	for _, a := range tok.Attr {
		out.WriteByte(' ')
		out.WriteString(a.Key)
		if a.Val != "" {
			out.WriteString(`="`)
			out.WriteString(html.EscapeString(a.Val))
			out.WriteByte('"')
		}
	}
	if selfClosing {
		out.WriteString("/>")
	} else {
		out.WriteByte('>')
	}
}

// handleImg processes one <img> element. Whatever happens, the element
// is re-emitted; at worst it keeps its original src. Each element
// records at most one report entry, success or failure, never both.
func (in *inliner) handleImg(tok html.Token, selfClosing bool) {
	var src string
	for _, a := range tok.Attr {
		if a.Key == "src" {
			src = a.Val // last occurrence wins, like a duplicate-keyed map
		}
	}
	src = strings.TrimSpace(src)

	switch {
	case src == "":
		in.report.Failure(in.doc, "(empty)", "Image tag has no src attribute")
	case isDataURI(src):
		// Already embedded; nothing to do and nothing to report.
	case isRemoteURL(src):
		in.report.Failure(in.doc, src, "Remote URLs cannot be inlined")
	default:
		resolved := resolveImagePath(cleanPath(src), in.baseDir)
		if info, err := os.Stat(resolved); err != nil || !info.Mode().IsRegular() {
			in.report.Failure(in.doc, src, "File not found: "+resolved)
			break
		}
		uri, err := encodeToDataURI(resolved)
		if err != nil {
			in.report.Failure(in.doc, src, "Encoding failed: "+err.Error())
			break
		}
		in.report.Success(in.doc, src)
		for i := range tok.Attr {
			if tok.Attr[i].Key == "src" {
				tok.Attr[i].Val = uri
			}
		}
	}
	rebuildTag(&in.out, tok, selfClosing)
}
