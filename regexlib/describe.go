package regexlib

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// DescribeDFA writes a readable structure dump: counts, alphabet,
// state roles, the transition table, and any dead states.
func DescribeDFA(w io.Writer, d *DFA) {
	fmt.Fprintln(w, "=== DFA Structure ===")
	fmt.Fprintf(w, "States: %d\n", len(d.States))
	fmt.Fprintf(w, "Alphabet: %s\n", runesLine(d.Alphabet))
	fmt.Fprintf(w, "Start: q%d\n", d.Start.ID)
	var accepting []string
	total := 0
	for _, s := range d.States {
		if s.Accepting {
			accepting = append(accepting, fmt.Sprintf("q%d", s.ID))
		}
		total += len(s.Transitions)
	}
	fmt.Fprintf(w, "Accepting: %s\n", nameLine(accepting))
	if total == 0 {
		fmt.Fprintln(w, "Transitions: none")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"From", "Symbol", "To"})
		for _, s := range d.States {
			for _, c := range transSymbols(s.Transitions) {
				table.Append([]string{
					fmt.Sprintf("q%d", s.ID),
					string(c),
					fmt.Sprintf("q%d", s.Transitions[c].ID),
				})
			}
		}
		table.Render()
	}
	var dead []string
	for _, s := range d.DeadStates() {
		dead = append(dead, fmt.Sprintf("q%d", s.ID))
	}
	fmt.Fprintf(w, "Dead states: %s\n", nameLine(dead))
}

// DescribeNFA lists every state with its labelled and epsilon edges.
func DescribeNFA(w io.Writer, n *NFA) {
	fmt.Fprintln(w, "=== NFA Structure ===")
	fmt.Fprintf(w, "States: %d\n", len(n.States))
	fmt.Fprintf(w, "Alphabet: %s\n", runesLine(n.Alphabet))
	fmt.Fprintf(w, "Start: %d\n", n.Start.ID)
	fmt.Fprintf(w, "Accept: %d\n", n.Accept.ID)
	for _, s := range n.States {
		for _, c := range edgeSymbols(s.Edges) {
			fmt.Fprintf(w, "%d -%c-> %s\n", s.ID, c, idLine(s.Edges[c]))
		}
		if len(s.Epsilon) > 0 {
			fmt.Fprintf(w, "%d -ε-> %s\n", s.ID, idLine(s.Epsilon))
		}
	}
}

func runesLine(rs []rune) string {
	if len(rs) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func nameLine(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

func idLine(states []*NFAState) string {
	ids := make([]int, len(states))
	for i, s := range states {
		ids[i] = s.ID
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, " ")
}

func transSymbols(m map[rune]*DFAState) []rune {
	out := make([]rune, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func edgeSymbols(m map[rune][]*NFAState) []rune {
	out := make([]rune, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
