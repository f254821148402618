package token

import (
	"bytes"
	"errors"
	"testing"
)

type roundTripTest struct {
	in string
}

var roundTripTests = []roundTripTest{
	{in: ""},
	{in: "foo.\n"},
	{in: "[{kernel, [{a, 1}, {b, 2}]}].\n"},
	{in: "% leading comment\n{a, \"x\"}. % trailing\n"},
	{in: "{'quoted atom', \"text \\\" esc\", 3.14}.\n"},
	{in: "\t {a,\r\n\t\t1}  .\n\n% end\n"},
	{in: "[{http, [{\"0.0.0.0\", 8080},\n         {\"::\", 8443}]}].\n"},
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range roundTripTests {
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Errorf("tokenize %q: %v", tc.in, err)
			continue
		}
		buf := bytes.NewBuffer(nil)
		for i := range toks {
			buf.Write(toks[i].Bytes)
		}
		if buf.String() != tc.in {
			t.Errorf("round trip %q: got %q", tc.in, buf.String())
		}
	}
}

type kindsTest struct {
	in    string
	kinds []Kind
}

var kindsTests = []kindsTest{
	{in: "a.", kinds: []Kind{Root, Atom, EndRoot}},
	{in: "1.5.", kinds: []Kind{Root, Num, EndRoot}},
	{in: ".5.", kinds: []Kind{Root, Num, EndRoot}},
	{in: "{a, 1}.", kinds: []Kind{Root, BeginTuple, Atom, Comma, Space, Num, EndTuple, EndRoot}},
	{in: "[].", kinds: []Kind{Root, BeginList, EndList, EndRoot}},
	{in: "% c\na.", kinds: []Kind{Root, Comment, Newline, Atom, EndRoot}},
	{in: "'a b'.", kinds: []Kind{Root, Atom, EndRoot}},
	{in: "\"s\".", kinds: []Kind{Root, Text, EndRoot}},
}

func TestKinds(t *testing.T) {
	for _, tc := range kindsTests {
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Errorf("tokenize %q: %v", tc.in, err)
			continue
		}
		if len(toks) != len(tc.kinds) {
			t.Errorf("%q: got %d tokens, want %d", tc.in, len(toks), len(tc.kinds))
			continue
		}
		for i, k := range tc.kinds {
			if toks[i].Kind != k {
				t.Errorf("%q token %d: got %s, want %s", tc.in, i, toks[i].Kind, k)
			}
		}
	}
}

func TestLines(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a.\nb.\n\nc.\n"))
	if err != nil {
		t.Fatal(err)
	}
	byLine := map[string]int{}
	for i := range toks {
		if toks[i].Kind == Atom {
			byLine[string(toks[i].Bytes)] = toks[i].Line
		}
	}
	want := map[string]int{"a": 1, "b": 2, "c": 4}
	for name, line := range want {
		if byLine[name] != line {
			t.Errorf("%s: got line %d, want %d", name, byLine[name], line)
		}
	}
}

func TestLexError(t *testing.T) {
	for _, in := range []string{"#", "{a, 'unterminated}.", "\"no close"} {
		_, err := Tokenize(nil, []byte(in))
		if err == nil {
			t.Errorf("%q: expected lex error", in)
			continue
		}
		if !errors.Is(err, ErrLex) {
			t.Errorf("%q: got %v, want ErrLex", in, err)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("%q: error is not a *LexError", in)
		}
	}
}

type classifyTest struct {
	in   string
	kind Kind
	ok   bool
}

var classifyTests = []classifyTest{
	{in: "atom_1", kind: Atom, ok: true},
	{in: "'an atom'", kind: Atom, ok: true},
	{in: "42", kind: Num, ok: true},
	{in: "3.14", kind: Num, ok: true},
	{in: "\"text\"", kind: Text, ok: true},
	{in: "198.51.100.1", ok: false},
	{in: "Not_an_atom", ok: false},
	{in: "a b", ok: false},
	{in: "", ok: false},
	{in: "[]", ok: false},
}

func TestClassify(t *testing.T) {
	for _, tc := range classifyTests {
		kind, ok := Classify(tc.in)
		if ok != tc.ok {
			t.Errorf("Classify(%q): ok=%v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && kind != tc.kind {
			t.Errorf("Classify(%q): got %s, want %s", tc.in, kind, tc.kind)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	if got := Quote(`a "b" \c`); got != `"a \"b\" \\c"` {
		t.Errorf("Quote: got %s", got)
	}
	if got := Unquote(`"a \"b\" \\c"`); got != `a "b" \c` {
		t.Errorf("Unquote: got %s", got)
	}
	if got := Unquote("'x y'"); got != "x y" {
		t.Errorf("Unquote atom: got %s", got)
	}
	if got := Unquote("bare"); got != "bare" {
		t.Errorf("Unquote bare: got %s", got)
	}
}
