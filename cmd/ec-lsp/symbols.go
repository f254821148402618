package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/erledit/erledit/cst"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	root := doc.doc.Root()
	out := make([]interface{}, 0, len(root.Children))
	for _, cid := range root.Children {
		out = append(out, symbolFor(doc, cid))
	}
	return out, nil
}

func symbolFor(d *document, id int) protocol.DocumentSymbol {
	n := d.doc.Node(id)
	rng := nodeRange(d, n)
	sym := protocol.DocumentSymbol{
		Name:           leafName(d.doc.QualifiedName(id)),
		Kind:           symbolKind(n),
		Range:          rng,
		SelectionRange: rng,
	}
	if vals := d.doc.ValueStrings(n); len(vals) > 0 {
		sym.Detail = joinDetail(vals)
	}
	for _, cid := range n.Children {
		sym.Children = append(sym.Children, symbolFor(d, cid))
	}
	return sym
}

func symbolKind(n *cst.Node) protocol.SymbolKind {
	if n.Kind == cst.ListNode {
		return protocol.SymbolKindArray
	}
	return protocol.SymbolKindStruct
}

func nodeRange(d *document, n *cst.Node) protocol.Range {
	startTok := d.doc.Tok(n.Start)
	endTok := d.doc.Tok(n.End)
	sl, sc := d.positionAt(startTok.Offset)
	el, ec := d.positionAt(endTok.Offset + endTok.Len())
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

func joinDetail(vals []string) string {
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += " "
		}
		out += v
	}
	return out
}
