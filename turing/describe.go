package turing

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Describe writes a readable structure dump: states, alphabets, special
// states and the full rule table.
func Describe(w io.Writer, m *Machine) {
	fmt.Fprintln(w, "=== Turing Machine Structure ===")
	fmt.Fprintf(w, "States: %s\n", strings.Join(m.StateNames(), " "))
	fmt.Fprintf(w, "Input alphabet: %s\n", runesLine(sortRuneSet(m.InputAlphabet)))
	fmt.Fprintf(w, "Tape alphabet: %s\n", runesLine(sortRuneSet(m.TapeAlphabet)))
	fmt.Fprintf(w, "Start state: %s\n", m.Start)
	accepts := make([]string, 0, len(m.AcceptStates))
	for s := range m.AcceptStates {
		accepts = append(accepts, s)
	}
	sort.Strings(accepts)
	fmt.Fprintf(w, "Accept states: %s\n", strings.Join(accepts, " "))
	fmt.Fprintf(w, "Reject state: %s\n", m.RejectState)
	fmt.Fprintf(w, "Transitions: %d\n", len(m.Transitions))
	if len(m.Transitions) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Read", "To", "Write", "Move"})
	for _, t := range m.Transitions {
		table.Append([]string{t.From, string(t.Read), t.To, string(t.Write), t.Move.String()})
	}
	table.Render()
}

// FormatTape renders the tape with the head cell in brackets, e.g.
// "ab[c]_". A head past either end leaves every cell bare.
func FormatTape(tape []rune, head int) string {
	var sb strings.Builder
	for i, r := range tape {
		if i == head {
			sb.WriteByte('[')
			sb.WriteRune(r)
			sb.WriteByte(']')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
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

func sortRuneSet(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
