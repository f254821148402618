package edit

import (
	"sort"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/token"
)

// remove soft-deletes the matched container: every token it spans is
// marked removed, ids stay valid, and the serializer drops the range.
// Separator repair keeps the surrounding list well-formed: prefer the
// container's own trailing comma, otherwise drop the previous sibling's
// comma so deleting the last element leaves no dangling separator.
func (s *Session) remove(d *cst.Doc, n *cst.Node, name string) error {
	if n.Kind == cst.RootNode || n.Parent < 0 {
		return &MissingTargetError{Name: name, Reason: "cannot remove the document root"}
	}
	for tid := n.Start; tid <= n.End; tid++ {
		d.Tok(tid).Action = token.RemoveAction
	}
	s.Dirty = true

	// Dispatch fires at the closing delimiter, before the trailing
	// separator has reached the builder, so n.CommaTok is not yet
	// associated here. Scan past trivia for it instead.
	if comma := trailingComma(d, n.End); comma >= 0 {
		d.Tok(comma).Action = token.RemoveAction
		return nil
	}
	sibs := siblings(d, d.Node(n.Parent))
	at := -1
	for i, sib := range sibs {
		if sib.start == n.Start {
			at = i
			break
		}
	}
	if at <= 0 {
		// First element, nothing to repair.
		return nil
	}
	prev := sibs[at-1]
	if prev.comma < 0 {
		s.warnf("SEPARATOR", "no separator found before %s; re-run with -diff to inspect", name)
		return nil
	}
	d.Tok(prev.comma).Action = token.RemoveAction
	return nil
}

// trailingComma finds the separator that follows token id end, skipping
// whitespace, comments and newlines; -1 when the next content token is
// not a comma.
func trailingComma(d *cst.Doc, end int) int {
	for tid := end + 1; tid < len(d.Toks); tid++ {
		switch d.Tok(tid).Kind {
		case token.Space, token.Comment, token.Newline:
		case token.Comma:
			return tid
		default:
			return -1
		}
	}
	return -1
}

type sibling struct {
	start int
	comma int
}

// siblings lists a container's direct members, containers and literal
// values merged in document order, each with its trailing comma if any.
func siblings(d *cst.Doc, p *cst.Node) []sibling {
	out := make([]sibling, 0, len(p.Children)+len(p.Values))
	for _, cid := range p.Children {
		c := d.Node(cid)
		out = append(out, sibling{start: c.Start, comma: c.CommaTok})
	}
	for _, tid := range p.Values {
		out = append(out, sibling{start: tid, comma: d.Tok(tid).CommaTok})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].start < out[j].start
	})
	return out
}
