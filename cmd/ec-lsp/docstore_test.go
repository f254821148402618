package main

import (
	"testing"
)

func TestOffsetPositionMapping(t *testing.T) {
	d := &document{text: "ab\ncde\n\nf", lineStart: lineStarts("ab\ncde\n\nf")}
	cases := []struct {
		line, char, off int
	}{
		{line: 0, char: 0, off: 0},
		{line: 0, char: 1, off: 1},
		{line: 1, char: 0, off: 3},
		{line: 1, char: 2, off: 5},
		{line: 2, char: 0, off: 7},
		{line: 3, char: 0, off: 8},
	}
	for _, tc := range cases {
		if got := d.offsetAt(tc.line, tc.char); got != tc.off {
			t.Errorf("offsetAt(%d, %d): got %d, want %d", tc.line, tc.char, got, tc.off)
		}
		line, char := d.positionAt(tc.off)
		if line != tc.line || char != tc.char {
			t.Errorf("positionAt(%d): got %d:%d, want %d:%d", tc.off, line, char, tc.line, tc.char)
		}
	}
	// Past the end of a line clamps to the line boundary.
	if got := d.offsetAt(0, 99); got != 3 {
		t.Errorf("clamped offset: got %d, want 3", got)
	}
}

func TestDocumentStore(t *testing.T) {
	ds := &documentStore{docs: map[string]*document{}}
	ds.put("file:///a", "{a, 1}.\n")
	if d := ds.get("file:///a"); d == nil || d.doc == nil {
		t.Fatal("expected a parsed document")
	}
	// A document that fails to parse keeps its text with no tree.
	ds.put("file:///a", "{a, 1")
	if d := ds.get("file:///a"); d == nil || d.doc != nil {
		t.Fatal("expected an unparsed document")
	}
	ds.drop("file:///a")
	if ds.get("file:///a") != nil {
		t.Fatal("expected the document to be dropped")
	}
}

func TestLeafName(t *testing.T) {
	cases := map[string]string{
		"kernel.logger_level": "logger_level",
		"http.[1]":            "[1]",
		"top":                 "top",
	}
	for in, want := range cases {
		if got := leafName(in); got != want {
			t.Errorf("leafName(%q): got %q, want %q", in, got, want)
		}
	}
}
