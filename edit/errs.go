package edit

import (
	"errors"
	"fmt"

	"github.com/erledit/erledit/token"
)

var (
	ErrNoMatch       = errors.New("no match")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrMissingTarget = errors.New("missing target")
	ErrBadArg        = errors.New("bad argument")
)

// NoMatchError is raised at root close when a non-listing command
// matched nothing.
type NoMatchError struct {
	Target string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v: no container matches %q", ErrNoMatch, e.Target)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// TypeMismatchError reports a supplied value whose lexical form does
// not match the target token's original kind.
type TypeMismatchError struct {
	Arg  string
	Want token.Kind
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: %q is %s, target is %s", ErrTypeMismatch, e.Arg, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// MissingTargetError reports a matched container that cannot serve the
// requested mutation.
type MissingTargetError struct {
	Name   string
	Reason string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrMissingTarget, e.Name, e.Reason)
}

func (e *MissingTargetError) Unwrap() error {
	return ErrMissingTarget
}
