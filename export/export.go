// Package export lowers a parsed config document into plain Go data
// for consumption outside the editor: JSON, YAML, or JSON transformed
// by an RFC 6902 patch. Exporting is lossy by design (comments and
// layout drop); the editor itself never round-trips through it.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/token"
)

// Data lowers the whole document. Named tuples become single-key maps,
// lists become arrays, numbers become numbers, atoms and quoted text
// become strings. A lone top-level container is unwrapped.
func Data(d *cst.Doc) any {
	ms := members(d, d.Root())
	if len(ms) == 1 {
		return ms[0]
	}
	return ms
}

// JSON renders the lowered document as indented JSON, applying an
// optional RFC 6902 patch first.
func JSON(d *cst.Doc, patch []byte) ([]byte, error) {
	raw, err := json.Marshal(Data(d))
	if err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		ops, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return nil, fmt.Errorf("invalid patch: %w", err)
		}
		if raw, err = ops.Apply(raw); err != nil {
			return nil, fmt.Errorf("applying patch: %w", err)
		}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}

// YAML renders the lowered document as YAML.
func YAML(d *cst.Doc) ([]byte, error) {
	return yaml.Marshal(Data(d))
}

func lower(d *cst.Doc, id int) any {
	n := d.Node(id)
	ms := members(d, n)
	switch n.Kind {
	case cst.ListNode:
		return ms
	case cst.TupleNode:
		if named(n) {
			if len(ms) == 1 {
				return map[string]any{n.Name: ms[0]}
			}
			return map[string]any{n.Name: ms}
		}
		return ms
	}
	return ms
}

// named reports whether the tuple carries a real atom name rather than
// a synthetic ordinal.
func named(n *cst.Node) bool {
	return n.Name != "" && n.Name[0] != '['
}

// members lowers a container's direct children and values, merged in
// document order.
func members(d *cst.Doc, n *cst.Node) []any {
	type member struct {
		at int
		v  any
	}
	ms := make([]member, 0, len(n.Children)+len(n.Values))
	for _, cid := range n.Children {
		ms = append(ms, member{at: d.Node(cid).Start, v: lower(d, cid)})
	}
	for _, tid := range n.Values {
		ms = append(ms, member{at: tid, v: literal(d.Tok(tid))})
	}
	for i := 1; i < len(ms); i++ {
		for j := i; j > 0 && ms[j-1].at > ms[j].at; j-- {
			ms[j-1], ms[j] = ms[j], ms[j-1]
		}
	}
	out := make([]any, len(ms))
	for i, m := range ms {
		out[i] = m.v
	}
	return out
}

func literal(t *token.Token) any {
	s := string(t.Bytes)
	switch t.Kind {
	case token.Num:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case token.Atom, token.Text:
		return token.Unquote(s)
	}
	return s
}
