package regexlib

import "sort"

// SameLanguage reports whether a and b accept exactly the same strings.
// It walks the product of the two automata over the union of their
// alphabets. A missing transition behaves as an implicit non-accepting
// sink, so partial automata compare correctly.
func SameLanguage(a, b *DFA) bool {
	type pair struct{ i, j int } // state ids, -1 for the implicit sink
	sink := -1
	accepting := func(d *DFA, id int) bool {
		return id != sink && d.States[id].Accepting
	}
	step := func(d *DFA, id int, c rune) int {
		if id == sink {
			return sink
		}
		if t, ok := d.States[id].Transitions[c]; ok {
			return t.ID
		}
		return sink
	}
	alpha := unionRunes(a.Alphabet, b.Alphabet)
	start := pair{a.Start.ID, b.Start.ID}
	seen := map[pair]struct{}{start: {}}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if accepting(a, p.i) != accepting(b, p.j) {
			return false
		}
		for _, c := range alpha {
			np := pair{step(a, p.i, c), step(b, p.j, c)}
			if np.i == sink && np.j == sink {
				continue
			}
			if _, ok := seen[np]; !ok {
				seen[np] = struct{}{}
				queue = append(queue, np)
			}
		}
	}
	return true
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
