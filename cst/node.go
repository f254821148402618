// Package cst builds a concrete syntax tree over the token arena. The
// tree never owns source text: nodes are structural annotations keyed
// by token ids, and rendering is a straight pass over the tokens, so
// unedited regions round-trip byte for byte.
package cst

import (
	"github.com/erledit/erledit/token"
)

type NodeKind int

const (
	RootNode NodeKind = iota
	TupleNode
	ListNode
)

func (k NodeKind) String() string {
	return map[NodeKind]string{
		RootNode:  "root",
		TupleNode: "tuple",
		ListNode:  "list",
	}[k]
}

// Node annotates a container. Fields other than the child counter are
// write-once: they are set when the container opens or closes and are
// immutable afterwards.
type Node struct {
	ID    int
	Kind  NodeKind
	Name  string
	Order int

	// Parent is the enclosing container id, -1 for the root. Branch is
	// the full ancestor chain at creation time, root first.
	Parent int
	Branch []int

	// Children holds nested container ids in document order; Values
	// holds literal token ids that are direct members, excluding the
	// one consumed as Name.
	Children []int
	Values   []int

	// Start and End are the token ids of the opening and closing
	// delimiters (for the root, the synthetic token and the last token).
	Start, End int

	// CommaTok is the trailing separator token id, -1 if none.
	CommaTok int

	// NamedList is set on a tuple whose sole structural child is
	// exactly one list; it is the target shape for appends.
	NamedList int

	named bool
	kids  int
}

// Endpoint reports whether the node carries at least one direct value.
func (n *Node) Endpoint() bool {
	return len(n.Values) > 0
}

// Doc owns the token arena and the node table for one parsed input.
type Doc struct {
	Toks  []token.Token
	Nodes []Node
}

func (d *Doc) Node(id int) *Node {
	return &d.Nodes[id]
}

func (d *Doc) Tok(id int) *token.Token {
	return &d.Toks[id]
}

func (d *Doc) Root() *Node {
	return &d.Nodes[0]
}

// ValueStrings returns the current content of the node's value tokens.
func (d *Doc) ValueStrings(n *Node) []string {
	out := make([]string, 0, len(n.Values))
	for _, tid := range n.Values {
		out = append(out, string(d.Toks[tid].Bytes))
	}
	return out
}

// Contains reports whether byte offset off falls within the token span
// of n, inclusive of its delimiters.
func (d *Doc) Contains(n *Node, off int) bool {
	start := d.Toks[n.Start].Offset
	end := d.Toks[n.End].Offset + d.Toks[n.End].Len()
	return off >= start && off < end
}
