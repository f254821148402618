package token

// A rule matches a prefix of the remaining input and reports how many
// bytes it consumes, zero meaning no match. Rules are tried in order and
// the first non-empty match wins, so the order below is load-bearing:
// the number rule must run before EndRoot so "1.5" does not lex as
// (1)(.)(5), and the bare-atom rule must not swallow the statement dot.
type rule struct {
	kind  Kind
	match func(d []byte) int
}

var rules = []rule{
	{Comment, matchComment},
	{Space, matchSpace},
	{Comma, matchOne(',')},
	{BeginList, matchOne('[')},
	{EndList, matchOne(']')},
	{BeginTuple, matchOne('{')},
	{EndTuple, matchOne('}')},
	{Atom, matchBareAtom},
	{Atom, matchQuoted('\'')},
	{Num, matchNum},
	{Text, matchQuoted('"')},
	{EndRoot, matchOne('.')},
	{Newline, matchOne('\n')},
}

func matchOne(c byte) func([]byte) int {
	return func(d []byte) int {
		if d[0] == c {
			return 1
		}
		return 0
	}
}

// matchComment consumes '%' through the end of the line, excluding the
// newline itself so line counting stays with the Newline rule.
func matchComment(d []byte) int {
	if d[0] != '%' {
		return 0
	}
	i := 1
	for i < len(d) && d[i] != '\n' {
		i++
	}
	return i
}

func matchSpace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == '\t' || d[i] == '\r') {
		i++
	}
	return i
}

func matchBareAtom(d []byte) int {
	if d[0] < 'a' || d[0] > 'z' {
		return 0
	}
	i := 1
	for i < len(d) && isAtomChar(d[i]) {
		i++
	}
	return i
}

func isAtomChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
	case c >= 'A' && c <= 'Z':
	case c >= '0' && c <= '9':
	case c == '_' || c == '@':
	default:
		return false
	}
	return true
}

// matchQuoted consumes a q-delimited literal with backslash escapes.
// An unterminated literal matches nothing, which surfaces as a lex
// error at the opening quote.
func matchQuoted(q byte) func([]byte) int {
	return func(d []byte) int {
		if d[0] != q {
			return 0
		}
		i := 1
		for i < len(d) {
			switch d[i] {
			case '\\':
				i += 2
			case q:
				return i + 1
			case '\n':
				return 0
			default:
				i++
			}
		}
		return 0
	}
}

// matchNum accepts optional leading digits, one optional decimal point,
// and trailing digits. Integers and floats both lex as opaque Num text;
// a bare '.' never matches, leaving it for the EndRoot rule.
func matchNum(d []byte) int {
	i := 0
	for i < len(d) && isDigit(d[i]) {
		i++
	}
	if i < len(d) && d[i] == '.' {
		j := i + 1
		for j < len(d) && isDigit(d[j]) {
			j++
		}
		if j > i+1 {
			return j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Classify reports the literal kind of a standalone argument: the whole
// of s must lex as exactly one atom, number, or quoted text token.
func Classify(s string) (Kind, bool) {
	d := []byte(s)
	if len(d) == 0 {
		return 0, false
	}
	for _, r := range rules {
		n := r.match(d)
		if n == 0 {
			continue
		}
		if n == len(d) && r.kind.IsLiteral() {
			return r.kind, true
		}
		return 0, false
	}
	return 0, false
}
