package cst

import (
	"fmt"

	"github.com/erledit/erledit/debug"
	"github.com/erledit/erledit/token"
)

// CloseFunc is invoked each time a tuple or the root finishes, with the
// id of the closed container. Containers close innermost first.
type CloseFunc func(d *Doc, id int) error

// Builder consumes tokens one at a time and maintains the explicit
// stack of open container ids, seeded with the root at the bottom.
// Container nesting depth is bounded by input size, not call stack.
type Builder struct {
	doc     *Doc
	stack   []int
	onClose CloseFunc
}

// Build tokenizes src and feeds the builder one call per token.
func Build(src []byte, onClose CloseFunc) (*Doc, error) {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	doc := &Doc{Toks: toks}
	doc.Nodes = append(doc.Nodes, Node{
		ID:        0,
		Kind:      RootNode,
		Parent:    -1,
		CommaTok:  -1,
		NamedList: -1,
	})
	doc.Toks[0].Node = 0
	b := &Builder{doc: doc, stack: []int{0}, onClose: onClose}
	for id := 1; id < len(doc.Toks); id++ {
		if err := b.feed(id); err != nil {
			return nil, err
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *Builder) top() *Node {
	return &b.doc.Nodes[b.stack[len(b.stack)-1]]
}

func (b *Builder) feed(tid int) error {
	tok := &b.doc.Toks[tid]
	switch tok.Kind {
	case token.BeginList, token.BeginTuple:
		b.open(tid, tok.Kind)
	case token.Atom, token.Num, token.Text:
		b.literal(tid, tok)
	case token.Comma:
		b.comma(tid)
	case token.EndList, token.EndTuple:
		return b.close(tid, tok)
	case token.EndRoot:
		if len(b.stack) != 1 {
			return &StructureError{
				Line: tok.Line,
				Got:  "'.'",
				Open: b.top().Kind.String(),
			}
		}
	}
	return nil
}

func (b *Builder) open(tid int, kind token.Kind) {
	d := b.doc
	parent := b.top()
	id := len(d.Nodes)
	n := Node{
		ID:        id,
		Parent:    parent.ID,
		Order:     parent.kids,
		Branch:    append([]int(nil), b.stack...),
		Start:     tid,
		CommaTok:  -1,
		NamedList: -1,
	}
	if kind == token.BeginList {
		n.Kind = ListNode
		n.Name = ordinal(parent.Kind, n.Order)
		n.named = true
	} else {
		n.Kind = TupleNode
	}
	parent.Children = append(parent.Children, id)
	parent.kids++
	d.Nodes = append(d.Nodes, n)
	d.Toks[tid].Node = id
	b.stack = append(b.stack, id)
}

// literal attaches a value token to the innermost container. The first
// atom member of an unnamed container is consumed as its name and is
// not counted as a value; any other first literal forces a synthetic
// ordinal name and does count.
func (b *Builder) literal(tid int, tok *token.Token) {
	cur := b.top()
	if !cur.named {
		cur.named = true
		if tok.Kind == token.Atom {
			cur.Name = token.Unquote(string(tok.Bytes))
			return
		}
		parent := RootNode
		if cur.Parent >= 0 {
			parent = b.doc.Nodes[cur.Parent].Kind
		}
		cur.Name = ordinal(parent, cur.Order)
	}
	cur.Values = append(cur.Values, tid)
}

// comma associates a separator with the element it trails: the most
// recent container close or literal token, scanning backward.
func (b *Builder) comma(tid int) {
	d := b.doc
	for i := tid - 1; i > 0; i-- {
		t := &d.Toks[i]
		switch t.Kind {
		case token.EndTuple, token.EndList:
			d.Nodes[t.Node].CommaTok = tid
			return
		case token.Atom, token.Num, token.Text:
			t.CommaTok = tid
			return
		}
	}
}

func (b *Builder) close(tid int, tok *token.Token) error {
	d := b.doc
	cur := b.top()
	want := ListNode
	if tok.Kind == token.EndTuple {
		want = TupleNode
	}
	if cur.Kind != want {
		return &StructureError{
			Line: tok.Line,
			Got:  fmt.Sprintf("%q", tok.Bytes),
			Open: cur.Kind.String(),
		}
	}
	b.stack = b.stack[:len(b.stack)-1]
	cur.End = tid
	tok.Node = cur.ID
	if cur.Kind == ListNode {
		return nil
	}
	sealTuple(cur, d)
	if debug.Match() {
		debug.Logf("close %s %s\n", cur.Kind, d.QualifiedName(cur.ID))
	}
	if b.onClose != nil {
		return b.onClose(d, cur.ID)
	}
	return nil
}

func (b *Builder) finish() error {
	d := b.doc
	if len(b.stack) != 1 {
		cur := b.top()
		return &StructureError{
			Line: d.Toks[len(d.Toks)-1].Line,
			Got:  "end of input",
			Open: cur.Kind.String(),
		}
	}
	root := d.Root()
	root.End = len(d.Toks) - 1
	sealTuple(root, d)
	if b.onClose != nil {
		return b.onClose(d, 0)
	}
	return nil
}

// sealTuple runs the close-time finalization shared by tuples and the
// root: a container whose sole member besides its name is a single
// list is marked as a named list.
func sealTuple(n *Node, d *Doc) {
	if len(n.Children) == 1 && len(n.Values) == 0 && d.Nodes[n.Children[0]].Kind == ListNode {
		n.NamedList = n.Children[0]
	}
}

// ordinal renders the synthetic name of an unnamed member. List members
// use 1-based display ordinals; members of tuples and the root keep the
// raw 0-based order.
func ordinal(parent NodeKind, order int) string {
	if parent == ListNode {
		return fmt.Sprintf("[%d]", order+1)
	}
	return fmt.Sprintf("[%d]", order)
}
