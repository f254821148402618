// Package edit runs one editing or query command against an in-memory
// document: match dispatch at container close, the three mutation
// primitives, and the write-required bookkeeping.
package edit

import (
	"github.com/erledit/erledit/match"
)

type Op int

const (
	List Op = iota
	Get
	Add
	Remove
	Modify
	Search
)

func (o Op) String() string {
	return map[Op]string{
		List:   "list",
		Get:    "get",
		Add:    "add",
		Remove: "remove",
		Modify: "modify",
		Search: "search",
	}[o]
}

// Mode returns the match mode the operation resolves names with.
func (o Op) Mode() match.Mode {
	switch o {
	case List:
		return match.Prefix
	case Search:
		return match.Substring
	}
	return match.Exact
}

// Listing reports whether zero matches is a valid (empty) result
// rather than a fatal condition.
func (o Op) Listing() bool {
	return o == List || o == Search
}

// Mutates reports whether the operation can flag the document dirty.
func (o Op) Mutates() bool {
	switch o {
	case Add, Remove, Modify:
		return true
	}
	return false
}

// Skip is the positional placeholder that leaves a value untouched.
const Skip = "_"

// Command is the closed description of one invocation: the operation,
// the target name pattern, and the opaque positional arguments.
type Command struct {
	Op     Op
	Target string
	Args   []string

	// Force accepts replace-value type mismatches with a warning.
	Force bool
	// All includes non-endpoint containers in read output.
	All bool
	// Lines prefixes read output with the source line number.
	Lines bool
	// Where filters read output, may be nil.
	Where *match.Filter
}
