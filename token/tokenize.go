// Package token provides the lossless tokenizer for the nested
// tuple/list term syntax. Every byte of the input lands in exactly one
// token, in order, so concatenating token contents reproduces the
// source exactly.
package token

import (
	"github.com/erledit/erledit/debug"
)

// Tokenize appends one synthetic root token followed by one token per
// lexical unit of src to dst and returns the extended slice. Token ids
// are indexes into the result and remain stable for the life of the
// document.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	dst = append(dst, Token{Kind: Root, Line: 1, Node: -1, CommaTok: -1})
	line := 1
	i := 0
	for i < len(src) {
		rem := src[i:]
		kind, n := matchFirst(rem)
		if n == 0 {
			return nil, &LexError{Line: line, Remainder: snippet(rem)}
		}
		dst = append(dst, Token{
			Kind:     kind,
			Bytes:    src[i : i+n],
			Line:     line,
			Offset:   i,
			Node:     -1,
			CommaTok: -1,
		})
		if debug.Tokens() {
			debug.Logf("%s\n", dst[len(dst)-1].Info())
		}
		if kind == Newline {
			line++
		}
		i += n
	}
	return dst, nil
}

func matchFirst(d []byte) (Kind, int) {
	for _, r := range rules {
		if n := r.match(d); n > 0 {
			return r.kind, n
		}
	}
	return 0, 0
}

func snippet(d []byte) string {
	const max = 24
	if len(d) > max {
		return string(d[:max]) + "..."
	}
	return string(d)
}

// Unquote strips the surrounding quotes from a quoted atom or text
// token and resolves backslash escapes. Bare atoms and numbers pass
// through unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return s
	}
	body := s[1 : len(s)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		out = append(out, body[i])
	}
	return string(out)
}

// Quote renders s as a quoted text literal, escaping backslashes and
// double quotes.
func Quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(append(out, '"'))
}
