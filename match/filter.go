package match

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled -where expression evaluated against each
// matched endpoint. The expression sees three variables: name (the
// fully qualified dotted name), line (1-based), and values (the
// endpoint's literal values as strings).
type Filter struct {
	src string
	prg *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	// The declared environment makes the three variables shadow any
	// same-named builtins, values() in particular.
	prg, err := expr.Compile(src, expr.Env(map[string]any{
		"name":   "",
		"line":   0,
		"values": []string{},
	}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) Eval(name string, line int, values []string) (bool, error) {
	env := map[string]any{
		"name":   name,
		"line":   line,
		"values": values,
	}
	out, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: non-boolean result %T", f.src, out)
	}
	return b, nil
}
