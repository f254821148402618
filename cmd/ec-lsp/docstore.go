package main

import (
	"strings"

	"github.com/erledit/erledit/cst"
)

// document is one open editor buffer with its parsed tree. A document
// that fails to parse keeps its text but has a nil doc; hover and
// symbols simply go quiet until it parses again.
type document struct {
	text      string
	doc       *cst.Doc
	lineStart []int
}

type documentStore struct {
	docs map[string]*document
}

func (ds *documentStore) put(uri, text string) {
	d := &document{text: text, lineStart: lineStarts(text)}
	if doc, err := cst.Build([]byte(text), nil); err == nil {
		d.doc = doc
	}
	ds.docs[uri] = d
}

func (ds *documentStore) get(uri string) *document {
	return ds.docs[uri]
}

func (ds *documentStore) drop(uri string) {
	delete(ds.docs, uri)
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetAt converts a 0-based LSP line/character position to a byte
// offset, clamped to the document.
func (d *document) offsetAt(line, char int) int {
	if line < 0 || line >= len(d.lineStart) {
		return len(d.text)
	}
	off := d.lineStart[line] + char
	end := len(d.text)
	if line+1 < len(d.lineStart) {
		end = d.lineStart[line+1]
	}
	if off > end {
		off = end
	}
	return off
}

// positionAt converts a byte offset back to a 0-based line/character.
func (d *document) positionAt(off int) (int, int) {
	line := 0
	for line+1 < len(d.lineStart) && d.lineStart[line+1] <= off {
		line++
	}
	return line, off - d.lineStart[line]
}

// leafName is the last segment of a dotted qualified name.
func leafName(qname string) string {
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
