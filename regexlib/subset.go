package regexlib

import (
	"container/list"
	"fmt"
	"sort"
)

// epsilonClosure grows set in place with every state reachable through
// epsilon edges alone and returns it.
func epsilonClosure(set map[*NFAState]struct{}) map[*NFAState]struct{} {
	stack := list.New()
	for s := range set {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(*NFAState)
		for _, t := range s.Epsilon {
			if _, ok := set[t]; !ok {
				set[t] = struct{}{}
				stack.PushBack(t)
			}
		}
	}
	return set
}

// move collects the states reachable from set on one symbol, before
// closure.
func move(set map[*NFAState]struct{}, sym rune) map[*NFAState]struct{} {
	res := make(map[*NFAState]struct{})
	for s := range set {
		for _, t := range s.Edges[sym] {
			res[t] = struct{}{}
		}
	}
	return res
}

func hasAccept(set map[*NFAState]struct{}) bool {
	for s := range set {
		if s.Accepting {
			return true
		}
	}
	return false
}

// SubsetConstruct determinizes n. Each DFA state stands for an
// epsilon-closed set of NFA states and accepts when any member does.
// A symbol with no reachable target gets no transition at all, so the
// result is partial: no sink states are invented. State ids are dense
// in discovery order starting from 0.
func SubsetConstruct(n *NFA) *DFA {
	startSet := epsilonClosure(map[*NFAState]struct{}{n.Start: {}})
	key := func(set map[*NFAState]struct{}) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, s.ID)
		}
		sort.Ints(ids)
		return fmt.Sprint(ids)
	}
	seen := map[string]*DFAState{}
	start := &DFAState{ID: 0, Transitions: map[rune]*DFAState{}, Accepting: hasAccept(startSet)}
	seen[key(startSet)] = start
	states := []*DFAState{start}
	alphabet := map[rune]struct{}{}
	queue := []map[*NFAState]struct{}{startSet}
	for len(queue) > 0 {
		curSet := queue[0]
		queue = queue[1:]
		cur := seen[key(curSet)]
		for _, sym := range n.Alphabet {
			moveSet := move(curSet, sym)
			if len(moveSet) == 0 {
				continue
			}
			clo := epsilonClosure(moveSet)
			k := key(clo)
			d, ok := seen[k]
			if !ok {
				d = &DFAState{ID: len(states), Transitions: map[rune]*DFAState{}, Accepting: hasAccept(clo)}
				seen[k] = d
				states = append(states, d)
				queue = append(queue, clo)
			}
			cur.Transitions[sym] = d
			alphabet[sym] = struct{}{}
		}
	}
	alpha := make([]rune, 0, len(alphabet))
	for r := range alphabet {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return &DFA{Start: start, States: states, Alphabet: alpha}
}
