package token

import "fmt"

type Kind int

const (
	Root Kind = iota
	Comment
	Space
	Comma
	BeginList
	EndList
	BeginTuple
	EndTuple
	Atom
	Num
	Text
	EndRoot
	Newline
)

func (k Kind) String() string {
	return map[Kind]string{
		Root:       "Root",
		Comment:    "Comment",
		Space:      "Space",
		Comma:      "Comma",
		BeginList:  "BeginList",
		EndList:    "EndList",
		BeginTuple: "BeginTuple",
		EndTuple:   "EndTuple",
		Atom:       "Atom",
		Num:        "Num",
		Text:       "Text",
		EndRoot:    "EndRoot",
		Newline:    "Newline",
	}[k]
}

// IsLiteral reports whether k is a value-bearing kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case Atom, Num, Text:
		return true
	}
	return false
}

type Action int

const (
	KeepAction Action = iota
	RemoveAction
)

// Token is one lexical unit of the source. Bytes is the exact source
// substring the token spans and is the only mutable path for in-place
// edits; Line and Offset are set at tokenization time and never change.
//
// Node and CommaTok are structural annotations filled in by the tree
// builder: Node is the id of the container this token opens or closes
// (-1 for tokens that carry no node metadata), CommaTok is the id of the
// trailing separator associated with a literal value token.
type Token struct {
	Kind     Kind
	Bytes    []byte
	Line     int
	Offset   int
	Node     int
	CommaTok int
	Action   Action
}

func (t *Token) Len() int {
	return len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q line=%d offset=%d", t.Kind, t.Bytes, t.Line, t.Offset)
}

// SetBytes replaces the token content. The replacement is copied so the
// token never aliases the original source buffer after an edit.
func (t *Token) SetBytes(v string) {
	t.Bytes = []byte(v)
}

// Append extends the token content with v, reallocating so the original
// source buffer is left untouched.
func (t *Token) Append(v string) {
	b := make([]byte, 0, len(t.Bytes)+len(v))
	b = append(b, t.Bytes...)
	b = append(b, v...)
	t.Bytes = b
}
