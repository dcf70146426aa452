package shell

import (
	"fmt"
	"io"

	"github.com/Ziad-004/TOC-Project/turing"
)

// TraceWriter returns an observer that prints one line per simulation
// step, stopping after limit lines with an elision notice. limit <= 0
// prints every step.
func TraceWriter(w io.Writer, limit int) turing.StepObserver {
	return func(step int, t turing.Transition, tape []rune, head int) {
		if limit > 0 {
			if step == limit+1 {
				fmt.Fprintf(w, "... (showing only the first %d steps)\n", limit)
			}
			if step > limit {
				return
			}
		}
		fmt.Fprintf(w, "Step %d: %s | Tape: %s\n", step, t, turing.FormatTape(tape, head))
	}
}
