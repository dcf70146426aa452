package turing

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz rendering of the machine to w. Edges are
// labelled "read/write,move".
func ExportDOT(w io.Writer, m *Machine) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, name := range m.StateNames() {
		shape := "circle"
		if _, ok := m.AcceptStates[name]; ok {
			shape = "doublecircle"
		}
		if name == m.RejectState {
			shape = "box"
		}
		fmt.Fprintf(w, "    %q [shape=%s];\n", name, shape)
	}
	for _, t := range m.Transitions {
		fmt.Fprintf(w, "    %q -> %q [label=\"%c/%c,%s\"];\n", t.From, t.To, t.Read, t.Write, t.Move)
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> %q;\n", m.Start)
	fmt.Fprintln(w, "}")
}
