// Package turing models a single-tape deterministic Turing machine and
// a translator that turns a DFA into one replaying it left to right.
package turing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Move is a head direction.
type Move int8

const (
	Left  Move = -1
	Right Move = +1
)

func (m Move) String() string {
	if m == Left {
		return "L"
	}
	return "R"
}

// Reserved tape symbols. Blank pads the tape past either end and doubles
// as the end-of-input sentinel for translated machines. EndMarker stays
// reserved in the tape alphabet so inputs containing it are detectably
// outside the machine's input alphabet.
const (
	Blank     = '_'
	EndMarker = '#'
)

// Transition is one rule: in state From reading Read, write Write, move
// the head one cell and switch to state To.
type Transition struct {
	From  string
	Read  rune
	To    string
	Write rune
	Move  Move
}

func (t Transition) String() string {
	return fmt.Sprintf("(%s, %c) -> (%s, %c, %s)", t.From, t.Read, t.To, t.Write, t.Move)
}

// Machine is a deterministic single-tape Turing machine. Transitions is
// an ordered list; lookup scans it front to back, so the first rule for
// a (state, symbol) pair wins.
type Machine struct {
	States        map[string]struct{}
	InputAlphabet map[rune]struct{}
	TapeAlphabet  map[rune]struct{}
	Transitions   []Transition
	Start         string
	AcceptStates  map[string]struct{}
	RejectState   string
	Blank         rune
}

func (m *Machine) findTransition(state string, read rune) (Transition, bool) {
	for _, t := range m.Transitions {
		if t.From == state && t.Read == read {
			return t, true
		}
	}
	return Transition{}, false
}

// StateNames returns every state name, numbered states first in numeric
// order, then the rest alphabetically.
func (m *Machine) StateNames() []string {
	names := make([]string, 0, len(m.States))
	for s := range m.States {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool {
		ni, oki := numberedState(names[i])
		nj, okj := numberedState(names[j])
		switch {
		case oki && okj:
			return ni < nj
		case oki:
			return true
		case okj:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}

func numberedState(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "q")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
