package cst

import "strings"

// QualifiedName computes the fully qualified dotted name of a node:
// the names of ancestor tuples on its branch (lists are transparent,
// the root contributes nothing) joined with the node's own name. The
// result is idempotent to recompute, so it is derived on demand rather
// than cached.
func (d *Doc) QualifiedName(id int) string {
	n := &d.Nodes[id]
	if n.Kind == RootNode {
		return ""
	}
	parts := make([]string, 0, len(n.Branch))
	for _, aid := range n.Branch {
		a := &d.Nodes[aid]
		if a.Kind != TupleNode {
			continue
		}
		parts = append(parts, nameOf(a))
	}
	parts = append(parts, nameOf(n))
	return strings.Join(parts, ".")
}

func nameOf(n *Node) string {
	if !n.named {
		return "[]"
	}
	return n.Name
}
