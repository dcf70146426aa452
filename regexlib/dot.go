package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz rendering of an *NFA or *DFA to w.
func ExportDOT(w io.Writer, g interface{}) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	case *DFA:
		for _, s := range t.States {
			shape := "circle"
			if s.Accepting {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    q%d [shape=%s];\n", s.ID, shape)
			for _, c := range transSymbols(s.Transitions) {
				fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", s.ID, s.Transitions[c].ID, c)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", t.Start.ID)

	case *NFA:
		for _, s := range t.States {
			shape := "circle"
			if s.Accepting {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", s.ID, shape)
			for _, c := range edgeSymbols(s.Edges) {
				for _, to := range s.Edges[c] {
					fmt.Fprintf(w, "    n%d -> n%d [label=\"%c\"];\n", s.ID, to.ID, c)
				}
			}
			for _, to := range s.Epsilon {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", s.ID, to.ID)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.Start.ID)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}
