package match

import (
	"testing"
)

type modeTest struct {
	pat  string
	mode Mode
	name string
	want bool
}

var modeTests = []modeTest{
	{pat: "kernel.a", mode: Exact, name: "kernel.a", want: true},
	{pat: "kernel.a", mode: Exact, name: "kernel.ab", want: false},
	{pat: "kernel", mode: Exact, name: "kernel.a", want: false},
	{pat: "kernel", mode: Prefix, name: "kernel.a", want: true},
	{pat: "kernel", mode: Prefix, name: "xkernel", want: false},
	{pat: "", mode: Prefix, name: "anything", want: true},
	{pat: "ticktime", mode: Suffix, name: "kernel.net_ticktime", want: true},
	{pat: "ticktime", mode: Suffix, name: "ticktime_x", want: false},
	{pat: "net", mode: Substring, name: "kernel.net_ticktime", want: true},
	{pat: "net", mode: Substring, name: "kernel.logger", want: false},
	// Pattern text is a regular expression fragment.
	{pat: "kernel\\.(a|b)", mode: Exact, name: "kernel.b", want: true},
	{pat: "\\[1\\]", mode: Suffix, name: "http.[1]", want: true},
}

func TestModes(t *testing.T) {
	for _, tc := range modeTests {
		p, err := Compile(tc.pat, tc.mode)
		if err != nil {
			t.Errorf("compile %s %q: %v", tc.mode, tc.pat, err)
			continue
		}
		if got := p.Match(tc.name); got != tc.want {
			t.Errorf("%s %q vs %q: got %v, want %v", tc.mode, tc.pat, tc.name, got, tc.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("(", Exact); err == nil {
		t.Error("expected compile error")
	}
}

type filterTest struct {
	src    string
	name   string
	line   int
	values []string
	want   bool
}

var filterTests = []filterTest{
	{src: `line > 10`, name: "a", line: 11, values: nil, want: true},
	{src: `line > 10`, name: "a", line: 10, values: nil, want: false},
	{src: `name startsWith "kernel."`, name: "kernel.a", want: true},
	{src: `len(values) == 2`, name: "a", values: []string{"x", "y"}, want: true},
	{src: `values[0] == "8080"`, name: "a", values: []string{"8080"}, want: true},
	{src: `values[0] == "8080"`, name: "a", values: []string{"9090"}, want: false},
	{src: `"8080" in values`, name: "a", values: []string{`"::"`, "8080"}, want: true},
	{src: `name contains "http" and line < 5`, name: "http.[1]", line: 3, want: true},
}

func TestFilter(t *testing.T) {
	for _, tc := range filterTests {
		f, err := CompileFilter(tc.src)
		if err != nil {
			t.Errorf("compile %q: %v", tc.src, err)
			continue
		}
		got, err := f.Eval(tc.name, tc.line, tc.values)
		if err != nil {
			t.Errorf("eval %q: %v", tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestFilterCompileError(t *testing.T) {
	if _, err := CompileFilter("1 +"); err == nil {
		t.Error("expected compile error")
	}
}
