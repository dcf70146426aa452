package regexlib

// DFAState has at most one target per symbol. Missing symbols mean the
// string is rejected right there.
type DFAState struct {
	ID          int
	Accepting   bool
	Transitions map[rune]*DFAState
}

// Dead reports whether s can never reach acceptance: it does not accept
// and every outgoing transition loops back to itself.
func (s *DFAState) Dead() bool {
	if s.Accepting {
		return false
	}
	for _, t := range s.Transitions {
		if t != s {
			return false
		}
	}
	return true
}

// DFA is a deterministic automaton over the symbols in Alphabet.
// States is ordered by id, so States[i].ID == i. The transition
// function is partial; there are no generated sink states.
type DFA struct {
	Start    *DFAState
	States   []*DFAState
	Alphabet []rune
}

// Accepts runs input through the automaton. The first symbol with no
// transition from the current state rejects immediately; otherwise the
// verdict is the acceptance of the state reached at the end. The empty
// string is accepted exactly when the start state accepts.
func (d *DFA) Accepts(input string) bool {
	cur := d.Start
	for _, r := range input {
		next, ok := cur.Transitions[r]
		if !ok {
			return false
		}
		cur = next
	}
	return cur.Accepting
}

// DeadStates lists the states Dead reports true for, in id order.
func (d *DFA) DeadStates() []*DFAState {
	var out []*DFAState
	for _, s := range d.States {
		if s.Dead() {
			out = append(out, s)
		}
	}
	return out
}
