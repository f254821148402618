// Package match decides which containers a command applies to. A
// pattern is a regular expression fragment anchored according to the
// command's match mode.
package match

import (
	"fmt"
	"regexp"
)

type Mode int

const (
	Exact Mode = iota
	Prefix
	Suffix
	Substring
)

func (m Mode) String() string {
	return map[Mode]string{
		Exact:     "exact",
		Prefix:    "prefix",
		Suffix:    "suffix",
		Substring: "substring",
	}[m]
}

type Pattern struct {
	raw  string
	mode Mode
	re   *regexp.Regexp
}

// Compile anchors pat per mode and compiles it. The pattern text is
// used as-is, so callers may use regular expression syntax in names.
func Compile(pat string, mode Mode) (*Pattern, error) {
	var expr string
	switch mode {
	case Exact:
		expr = "^" + pat + "$"
	case Prefix:
		expr = "^" + pat
	case Suffix:
		expr = pat + "$"
	case Substring:
		expr = pat
	default:
		return nil, fmt.Errorf("unknown match mode %d", mode)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
	}
	return &Pattern{raw: pat, mode: mode, re: re}, nil
}

func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

func (p *Pattern) String() string {
	return fmt.Sprintf("%s(%s)", p.mode, p.raw)
}
