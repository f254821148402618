package edit

import (
	"errors"
	"strings"
	"testing"
)

type removeTest struct {
	name   string
	src    string
	target string
	want   string
}

var removeTests = []removeTest{
	{
		name:   "middle element takes its own separator",
		src:    kernelSrc,
		target: "kernel.b",
		want:   "[{kernel, [{a, 1},  {c, 3}]}].\n",
	},
	{
		name:   "last element takes the previous separator",
		src:    kernelSrc,
		target: "kernel.c",
		want:   "[{kernel, [{a, 1}, {b, 2} ]}].\n",
	},
	{
		name:   "first element takes its own separator",
		src:    kernelSrc,
		target: "kernel.a",
		want:   "[{kernel, [ {b, 2}, {c, 3}]}].\n",
	},
	{
		name:   "sole element leaves an empty list",
		src:    "{k, [{x, 1}]}.\n",
		target: "k.x",
		want:   "{k, []}.\n",
	},
	{
		name:   "separator after trivia still belongs to the element",
		src:    "{k, [{a, 1} % note\n, {b, 2}]}.\n",
		target: "k.a",
		want:   "{k, [ % note\n {b, 2}]}.\n",
	},
	{
		name:   "comments outside the span survive",
		src:    "% keep me\n[{a, 1}, % also kept\n {b, 2}].\n",
		target: "b",
		want:   "% keep me\n[{a, 1} % also kept\n ].\n",
	},
}

func TestRemove(t *testing.T) {
	for _, tc := range removeTests {
		got, sess := runWrite(t, tc.src, &Command{Op: Remove, Target: tc.target})
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if !sess.Dirty {
			t.Errorf("%s: remove must dirty the document", tc.name)
		}
	}
}

func TestRemoveFirstLeavesNoLeadingSeparator(t *testing.T) {
	got, sess := runWrite(t, "{kernel, [{a, 1}, {b, 2}, {c, 3}]}.\n", &Command{
		Op: Remove, Target: "kernel.a",
	})
	want := "{kernel, [ {b, 2}, {c, 3}]}.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "[,") || strings.Contains(got, "[ ,") {
		t.Errorf("dangling leading separator in %q", got)
	}
	if len(sess.Warnings) != 0 {
		t.Errorf("clean removal should not warn, got %v", sess.Warnings)
	}
}

func TestRemoveKeepsTokenIds(t *testing.T) {
	_, err := Run([]byte(kernelSrc), &Command{Op: Remove, Target: "kernel.b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	before, err := Run([]byte(kernelSrc), &Command{Op: List}, nil)
	if err != nil {
		t.Fatal(err)
	}
	after, err := Run([]byte(kernelSrc), &Command{Op: Remove, Target: "kernel.b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Soft delete: the node table is identical, only token actions change.
	if len(before.Doc.Nodes) != len(after.Doc.Nodes) {
		t.Errorf("node count changed: %d != %d", len(before.Doc.Nodes), len(after.Doc.Nodes))
	}
	if len(before.Doc.Toks) != len(after.Doc.Toks) {
		t.Errorf("token count changed: %d != %d", len(before.Doc.Toks), len(after.Doc.Toks))
	}
}

func TestRemoveMissingSeparatorWarns(t *testing.T) {
	// Adjacent tuples without a separator between them.
	src := "{k, [{x, 1} {y, 2}]}.\n"
	got, sess := runWrite(t, src, &Command{Op: Remove, Target: "k.y"})
	if got != "{k, [{x, 1} ]}.\n" {
		t.Errorf("got %q", got)
	}
	if len(sess.Warnings) != 1 || sess.Warnings[0].Category != "SEPARATOR" {
		t.Errorf("expected one SEPARATOR warning, got %v", sess.Warnings)
	}
}

func TestRemoveNoMatch(t *testing.T) {
	_, err := Run([]byte(kernelSrc), &Command{Op: Remove, Target: "kernel.z"}, nil)
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("got %v, want ErrNoMatch", err)
	}
}
