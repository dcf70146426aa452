package regexlib

import "unicode"

// maxGroupDepth caps parser recursion. A '(' opening a group beyond the
// cap is treated like any other unrecognized rune and skipped.
const maxGroupDepth = 500

// parser walks the pattern once, emitting NFA fragments directly. It
// has no failure mode: runes it does not understand become epsilon
// fragments and parsing continues.
type parser struct {
	b     *builder
	input []rune
	pos   int
	depth int
}

// isLiteral reports whether r is matched as an ordinary literal without
// escaping.
func isLiteral(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '\t'
}

// parseExpr handles alternation: expr := term ('|' expr)?
func (p *parser) parseExpr() frag {
	left := p.parseTerm()
	if p.pos < len(p.input) && p.input[p.pos] == '|' {
		p.pos++
		right := p.parseExpr()
		return p.b.alternate(left, right)
	}
	return left
}

// parseTerm concatenates factors until '|', ')' or the end of input.
// Zero factors concatenate to an epsilon fragment, so the empty pattern
// matches exactly the empty string.
func (p *parser) parseTerm() frag {
	var out frag
	first := true
	for p.pos < len(p.input) && p.input[p.pos] != '|' && p.input[p.pos] != ')' {
		f := p.parseFactor()
		if first {
			out = f
			first = false
		} else {
			out = p.b.concat(out, f)
		}
	}
	if first {
		return p.b.epsilon()
	}
	return out
}

// parseFactor parses one atom and an optional quantifier. A skipped
// rune returns immediately, so a quantifier after it is picked up as a
// separate factor and skipped in turn.
func (p *parser) parseFactor() frag {
	var f frag
	r := p.input[p.pos]
	switch {
	case r == '(' && p.depth < maxGroupDepth:
		p.pos++
		p.depth++
		f = p.parseExpr()
		p.depth--
		if p.pos < len(p.input) && p.input[p.pos] == ')' {
			p.pos++
		}
	case r == '\\' && p.pos+1 < len(p.input):
		// escape: the next rune is a literal, whatever it is
		p.pos++
		f = p.b.char(p.input[p.pos])
		p.pos++
	case r == '.':
		p.pos++
		f = p.b.wildcard()
	case isLiteral(r):
		p.pos++
		f = p.b.char(r)
	default:
		// unrecognized rune, a '(' past the depth cap, or a trailing
		// backslash: skip it and contribute nothing
		p.pos++
		return p.b.epsilon()
	}
	if p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '*':
			p.pos++
			f = p.b.star(f)
		case '+':
			p.pos++
			f = p.b.plus(f)
		case '?':
			p.pos++
			f = p.b.optional(f)
		}
	}
	return f
}

// BuildNFA compiles pattern into a Thompson NFA. It accepts any string:
// malformed constructs degrade (unclosed groups run to the end of the
// pattern, a stray ')' ends parsing, unrecognized runes are dropped)
// rather than fail.
func BuildNFA(pattern string) *NFA {
	b := newBuilder()
	p := &parser{b: b, input: []rune(pattern)}
	f := p.parseExpr()
	return &NFA{
		Start:    f.start,
		Accept:   f.accept,
		States:   b.states,
		Alphabet: b.sortedAlphabet(),
	}
}

// CompileDFA runs the whole pattern-to-DFA pipeline. It never reports
// an error: if construction panics the result degrades to a DFA that
// rejects every string.
func CompileDFA(pattern string) (d *DFA) {
	defer func() {
		if recover() != nil {
			d = emptyDFA()
		}
	}()
	return SubsetConstruct(BuildNFA(pattern))
}

// emptyDFA is the degraded result for a failed construction: one
// non-accepting state and no transitions.
func emptyDFA() *DFA {
	start := &DFAState{ID: 0, Transitions: map[rune]*DFAState{}}
	return &DFA{Start: start, States: []*DFAState{start}}
}
