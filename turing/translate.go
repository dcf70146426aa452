package turing

import (
	"fmt"
	"sort"

	"github.com/Ziad-004/TOC-Project/regexlib"
)

const (
	acceptState = "qAccept"
	rejectState = "qReject"
)

// FromDFA builds a machine that replays d over its input left to right.
// Each DFA state s becomes TM state "q<id>"; each DFA transition becomes
// a rule that re-writes the symbol it read and moves right. End of input
// is recognized through the blank the simulator pads with: every replay
// state gets a blank rule routing to qAccept when the DFA state accepts
// and to qReject when it does not. Acceptance therefore triggers only
// after the whole input has been consumed, never on an accepted prefix.
func FromDFA(d *regexlib.DFA) *Machine {
	m := &Machine{
		States:        map[string]struct{}{},
		InputAlphabet: map[rune]struct{}{},
		TapeAlphabet:  map[rune]struct{}{},
		AcceptStates:  map[string]struct{}{},
		RejectState:   rejectState,
		Blank:         Blank,
	}
	for _, s := range d.States {
		m.States[stateName(s.ID)] = struct{}{}
	}
	m.States[acceptState] = struct{}{}
	m.States[rejectState] = struct{}{}
	m.AcceptStates[acceptState] = struct{}{}
	m.Start = stateName(d.Start.ID)
	for _, c := range d.Alphabet {
		m.InputAlphabet[c] = struct{}{}
		m.TapeAlphabet[c] = struct{}{}
	}
	m.TapeAlphabet[Blank] = struct{}{}
	m.TapeAlphabet[EndMarker] = struct{}{}
	for _, s := range d.States {
		from := stateName(s.ID)
		for _, c := range sortedSymbols(s.Transitions) {
			m.Transitions = append(m.Transitions, Transition{
				From:  from,
				Read:  c,
				To:    stateName(s.Transitions[c].ID),
				Write: c,
				Move:  Right,
			})
		}
		verdict := rejectState
		if s.Accepting {
			verdict = acceptState
		}
		m.Transitions = append(m.Transitions, Transition{
			From:  from,
			Read:  Blank,
			To:    verdict,
			Write: Blank,
			Move:  Right,
		})
	}
	return m
}

func stateName(id int) string { return fmt.Sprintf("q%d", id) }

func sortedSymbols(m map[rune]*regexlib.DFAState) []rune {
	out := make([]rune, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
