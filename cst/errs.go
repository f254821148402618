package cst

import (
	"errors"
	"fmt"
)

var ErrStructure = errors.New("structural error")

// StructureError reports a closing delimiter that does not match the
// innermost open container.
type StructureError struct {
	Line int
	Got  string
	Open string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%v: %s at line %d closes open %s", ErrStructure, e.Got, e.Line, e.Open)
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}
