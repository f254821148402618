package edit

import (
	"fmt"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/token"
)

// replace overwrites value token contents positionally. Each argument
// that is not the skip placeholder must lex as the same literal kind
// the target token had originally; -force downgrades a mismatch to a
// warning.
func (s *Session) replace(d *cst.Doc, n *cst.Node, name string) error {
	if !n.Endpoint() {
		return &MissingTargetError{Name: name, Reason: "container has no values to modify"}
	}
	if len(s.Cmd.Args) == 0 {
		return fmt.Errorf("%w: modify needs at least one value", ErrBadArg)
	}
	if len(s.Cmd.Args) > len(n.Values) {
		return fmt.Errorf("%w: %s has %d values, got %d",
			ErrBadArg, name, len(n.Values), len(s.Cmd.Args))
	}
	for i, arg := range s.Cmd.Args {
		if arg == Skip {
			continue
		}
		vtok := d.Tok(n.Values[i])
		kind, ok := token.Classify(arg)
		if !ok || kind != vtok.Kind {
			got := "not a literal"
			if ok {
				got = kind.String()
			}
			if !s.Cmd.Force {
				return &TypeMismatchError{Arg: arg, Want: vtok.Kind, Got: got}
			}
			s.warnf("TYPE", "forcing %q (%s) over %s value %q",
				arg, got, vtok.Kind, vtok.Bytes)
		}
		vtok.SetBytes(arg)
		s.Dirty = true
	}
	return nil
}
