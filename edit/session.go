package edit

import (
	"fmt"
	"io"
	"strconv"

	"github.com/erledit/erledit/cst"
	"github.com/erledit/erledit/debug"
	"github.com/erledit/erledit/match"
)

// Warning is a recoverable condition reported to the caller; the
// category becomes the log line's uppercase tag.
type Warning struct {
	Category string
	Msg      string
}

// Session is one synchronous pipeline run: tokenize, build the tree,
// dispatch the command at container closes, record edits. Fatal errors
// abort before any output is produced, so callers never observe a
// partially edited document.
type Session struct {
	Cmd *Command
	Doc *cst.Doc

	// Matches counts containers whose qualified name matched.
	Matches int
	// Dirty is the write-required flag set by mutation primitives.
	Dirty bool
	// Warnings collects recoverable conditions in dispatch order.
	Warnings []Warning

	pattern *match.Pattern
	nth     []int
	out     io.Writer
}

// Run executes cmd against src. Read output goes to out; mutations are
// recorded on the returned session's document and serialized by the
// caller.
func Run(src []byte, cmd *Command, out io.Writer) (*Session, error) {
	pat, err := match.Compile(cmd.Target, cmd.Op.Mode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArg, err)
	}
	s := &Session{Cmd: cmd, pattern: pat, out: out}
	if cmd.Op == Get {
		if s.nth, err = parseIndices(cmd.Args); err != nil {
			return nil, err
		}
	}
	doc, err := cst.Build(src, s.containerClosed)
	if err != nil {
		return nil, err
	}
	s.Doc = doc
	if s.Matches == 0 && !cmd.Op.Listing() {
		return nil, &NoMatchError{Target: cmd.Target}
	}
	return s, nil
}

func (s *Session) warnf(category, format string, args ...any) {
	s.Warnings = append(s.Warnings, Warning{
		Category: category,
		Msg:      fmt.Sprintf(format, args...),
	})
}

// containerClosed is the match-engine hook: called for every completed
// tuple and finally for the root, innermost first.
func (s *Session) containerClosed(d *cst.Doc, id int) error {
	n := d.Node(id)
	if n.Kind == cst.RootNode {
		return nil
	}
	name := d.QualifiedName(id)
	if !s.pattern.Match(name) {
		return nil
	}
	s.Matches++
	if debug.Edit() {
		debug.Logf("%s matched %s\n", s.Cmd.Op, name)
	}
	switch s.Cmd.Op {
	case List, Search:
		return s.print(d, n, name)
	case Get:
		return s.get(d, n, name)
	case Modify:
		return s.replace(d, n, name)
	case Remove:
		return s.remove(d, n, name)
	case Add:
		return s.appendTuple(d, n, name)
	}
	return nil
}

func (s *Session) print(d *cst.Doc, n *cst.Node, name string) error {
	if !n.Endpoint() && !s.Cmd.All {
		return nil
	}
	vals := d.ValueStrings(n)
	if s.Cmd.Where != nil {
		keep, err := s.Cmd.Where.Eval(name, d.Tok(n.Start).Line, vals)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadArg, err)
		}
		if !keep {
			return nil
		}
	}
	return s.println(d, n, name, vals)
}

// get prints the endpoint's values, optionally selecting 1-based
// positions; out-of-range positions contribute nothing.
func (s *Session) get(d *cst.Doc, n *cst.Node, name string) error {
	if !n.Endpoint() {
		if s.Cmd.All {
			return s.println(d, n, name, nil)
		}
		return nil
	}
	vals := d.ValueStrings(n)
	if len(s.nth) > 0 {
		sel := make([]string, 0, len(s.nth))
		for _, i := range s.nth {
			if i >= 1 && i <= len(vals) {
				sel = append(sel, vals[i-1])
			}
		}
		vals = sel
	}
	return s.println(d, n, name, vals)
}

func (s *Session) println(d *cst.Doc, n *cst.Node, name string, vals []string) error {
	if s.out == nil {
		return nil
	}
	if s.Cmd.Lines {
		if _, err := fmt.Fprintf(s.out, "%d: ", d.Tok(n.Start).Line); err != nil {
			return err
		}
	}
	body := ".*"
	if len(vals) > 0 {
		body = joinSpace(vals)
	} else if n.Endpoint() {
		body = ""
	}
	_, err := fmt.Fprintf(s.out, "%s: %s\n", name, body)
	return err
}

func joinSpace(vals []string) string {
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += " "
		}
		out += v
	}
	return out
}

func parseIndices(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: value index %q is not a number", ErrBadArg, a)
		}
		out = append(out, i)
	}
	return out, nil
}
