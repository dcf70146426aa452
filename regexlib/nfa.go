package regexlib

import "sort"

// NFAState is one state of a Thompson NFA. A symbol may lead to several
// targets; epsilon edges consume no input and are kept separately.
type NFAState struct {
	ID        int
	Accepting bool
	Edges     map[rune][]*NFAState
	Epsilon   []*NFAState
}

// NFA is the automaton produced by BuildNFA. Exactly one state carries
// the accepting flag. States holds every state in creation order, so
// States[i].ID == i. Alphabet is sorted and lists every symbol that
// appears on a labelled edge.
type NFA struct {
	Start    *NFAState
	Accept   *NFAState
	States   []*NFAState
	Alphabet []rune
}

// builder owns state numbering and the alphabet for a single
// construction run. Two patterns built concurrently never share ids.
type builder struct {
	states   []*NFAState
	alphabet map[rune]struct{}
}

func newBuilder() *builder {
	return &builder{alphabet: map[rune]struct{}{}}
}

func (b *builder) newState() *NFAState {
	s := &NFAState{ID: len(b.states), Edges: map[rune][]*NFAState{}}
	b.states = append(b.states, s)
	return s
}

func (b *builder) sortedAlphabet() []rune {
	out := make([]rune, 0, len(b.alphabet))
	for r := range b.alphabet {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// frag is a sub-automaton under construction with a single entry and a
// single accepting exit.
type frag struct {
	start, accept *NFAState
}

// epsilon yields a fragment whose one state is both entry and exit, so
// it matches only the empty string.
func (b *builder) epsilon() frag {
	s := b.newState()
	s.Accepting = true
	return frag{start: s, accept: s}
}

func (b *builder) char(r rune) frag {
	s1 := b.newState()
	s2 := b.newState()
	s1.Edges[r] = append(s1.Edges[r], s2)
	s2.Accepting = true
	b.alphabet[r] = struct{}{}
	return frag{start: s1, accept: s2}
}

// wildcardRunes is the fixed universe matched by '.'.
const wildcardRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (b *builder) wildcard() frag {
	s1 := b.newState()
	s2 := b.newState()
	for _, r := range wildcardRunes {
		s1.Edges[r] = append(s1.Edges[r], s2)
		b.alphabet[r] = struct{}{}
	}
	s2.Accepting = true
	return frag{start: s1, accept: s2}
}

// concat chains g after f. f's exit stops accepting and gains an
// epsilon edge into g's entry.
func (b *builder) concat(f, g frag) frag {
	f.accept.Epsilon = append(f.accept.Epsilon, g.start)
	f.accept.Accepting = false
	g.accept.Accepting = true
	return frag{start: f.start, accept: g.accept}
}

// alternate builds f|g with a fresh entry branching into both and a
// fresh exit both accepts feed.
func (b *builder) alternate(f, g frag) frag {
	start := b.newState()
	accept := b.newState()
	start.Epsilon = append(start.Epsilon, f.start, g.start)
	f.accept.Epsilon = append(f.accept.Epsilon, accept)
	g.accept.Epsilon = append(g.accept.Epsilon, accept)
	f.accept.Accepting = false
	g.accept.Accepting = false
	accept.Accepting = true
	return frag{start: start, accept: accept}
}

// star builds f*. The new entry skips straight to the new exit for the
// empty match; f's old exit loops back to f's entry.
func (b *builder) star(f frag) frag {
	start := b.newState()
	accept := b.newState()
	start.Epsilon = append(start.Epsilon, f.start, accept)
	f.accept.Epsilon = append(f.accept.Epsilon, f.start, accept)
	f.accept.Accepting = false
	accept.Accepting = true
	return frag{start: start, accept: accept}
}

// plus builds f+ as f followed by a star over the same states. The star
// shares f's states rather than copying them, so the loop re-enters the
// original fragment.
func (b *builder) plus(f frag) frag {
	return b.concat(f, b.star(f))
}

// optional builds f? as an alternation of f with a fresh epsilon
// fragment.
func (b *builder) optional(f frag) frag {
	return b.alternate(f, b.epsilon())
}
