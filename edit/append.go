package edit

import (
	"strings"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/token"
)

// appendTuple adds a new tuple under the matched container's named
// list. Arguments are validated as literals; a scalar that does not lex
// as one is coerced to a quoted string with a notice. A single scalar
// gets an implicit empty list companion, matching the {Key, Value}
// shape the surrounding ecosystem expects.
func (s *Session) appendTuple(d *cst.Doc, n *cst.Node, name string) error {
	if n.NamedList < 0 {
		return &MissingTargetError{Name: name, Reason: "target is not a tuple holding a single list"}
	}
	if len(s.Cmd.Args) == 0 {
		return &MissingTargetError{Name: name, Reason: "add needs at least one value"}
	}
	lits := make([]string, 0, len(s.Cmd.Args)+1)
	for _, arg := range s.Cmd.Args {
		lit, err := s.literalArg(arg)
		if err != nil {
			return err
		}
		lits = append(lits, lit)
	}
	if len(lits) == 1 && lits[0] != "[]" {
		lits = append(lits, "[]")
	}
	text := "{" + strings.Join(lits, ", ") + "}"

	lst := d.Node(n.NamedList)
	indent := strings.Repeat("  ", len(lst.Branch))
	anchor := lastMember(d, lst)
	if anchor < 0 {
		d.Tok(lst.Start).Append(text)
	} else {
		d.Tok(anchor).Append(",\n" + indent + text)
	}
	s.Dirty = true
	return nil
}

// literalArg validates one add argument: a literal token, an explicit
// empty list or tuple, or a scalar coerced to a quoted string.
func (s *Session) literalArg(arg string) (string, error) {
	if arg == "[]" || arg == "{}" {
		return arg, nil
	}
	if _, ok := token.Classify(arg); ok {
		return arg, nil
	}
	q := token.Quote(arg)
	if kind, ok := token.Classify(q); ok && kind == token.Text {
		s.warnf("COERCE", "%q is not a literal, adding it as string %s", arg, q)
		return q, nil
	}
	return "", &TypeMismatchError{Arg: arg, Want: token.Text, Got: "not coercible to a literal"}
}

// lastMember returns the token id of the final element in the list:
// the last child's closing delimiter or the last literal value,
// whichever comes later; -1 for an empty list.
func lastMember(d *cst.Doc, lst *cst.Node) int {
	last := -1
	if k := len(lst.Children); k > 0 {
		last = d.Node(lst.Children[k-1]).End
	}
	if k := len(lst.Values); k > 0 {
		if tid := lst.Values[k-1]; tid > last {
			last = tid
		}
	}
	return last
}
