package regexlib

import "testing"

func TestAcceptsRejectsOnMissingTransition(t *testing.T) {
	d := CompileDFA("ab")
	accepts(t, d, "ab", true)
	accepts(t, d, "ax", false)
	accepts(t, d, "xb", false)
	accepts(t, d, "abx", false)
}

func TestEmptyInputDecidedByStart(t *testing.T) {
	accepts(t, CompileDFA("a*"), "", true)
	accepts(t, CompileDFA("ab"), "", false)
}

func TestDeadState(t *testing.T) {
	trap := &DFAState{ID: 0, Transitions: map[rune]*DFAState{}}
	trap.Transitions['a'] = trap
	trap.Transitions['b'] = trap
	if !trap.Dead() {
		t.Fatal("self-looping non-accepting state should be dead")
	}

	bare := &DFAState{ID: 1, Transitions: map[rune]*DFAState{}}
	if !bare.Dead() {
		t.Fatal("transitionless non-accepting state should be dead")
	}

	acc := &DFAState{ID: 2, Accepting: true, Transitions: map[rune]*DFAState{}}
	if acc.Dead() {
		t.Fatal("accepting state is never dead")
	}

	live := &DFAState{ID: 3, Transitions: map[rune]*DFAState{'a': acc}}
	if live.Dead() {
		t.Fatal("state with an escape route is not dead")
	}
}

func TestDeadStatesListing(t *testing.T) {
	trap := &DFAState{ID: 1, Transitions: map[rune]*DFAState{}}
	start := &DFAState{ID: 0, Accepting: true, Transitions: map[rune]*DFAState{'a': trap}}
	d := &DFA{Start: start, States: []*DFAState{start, trap}, Alphabet: []rune{'a'}}
	dead := d.DeadStates()
	if len(dead) != 1 || dead[0].ID != 1 {
		t.Fatalf("dead states %v, want just q1", dead)
	}
}
