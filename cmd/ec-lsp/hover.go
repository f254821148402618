package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/erledit/erledit/cst"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	off := doc.offsetAt(int(params.Position.Line), int(params.Position.Character))
	node := findNodeAt(doc.doc, off)
	if node == nil || node.Kind == cst.RootNode {
		return nil, nil
	}
	text := buildHoverText(doc.doc, node)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// findNodeAt returns the innermost container whose token span contains
// the byte offset.
func findNodeAt(d *cst.Doc, off int) *cst.Node {
	best := d.Root()
	for {
		deeper := false
		for _, cid := range best.Children {
			c := d.Node(cid)
			if d.Contains(c, off) {
				best = c
				deeper = true
				break
			}
		}
		if !deeper {
			return best
		}
	}
}

func buildHoverText(d *cst.Doc, n *cst.Node) string {
	parts := []string{
		fmt.Sprintf("**Name:** `%s`", d.QualifiedName(n.ID)),
		fmt.Sprintf("**Kind:** %s", n.Kind),
	}
	if vals := d.ValueStrings(n); len(vals) > 0 {
		parts = append(parts, fmt.Sprintf("**Values:** `%s`", strings.Join(vals, " ")))
	}
	if n.NamedList >= 0 {
		parts = append(parts, "**Shape:** named list")
	}
	return strings.Join(parts, "\n\n")
}
