package interpreter

import (
	"fmt"
	"io"

	"github.com/Ziad-004/TOC-Project/regexlib"
	"github.com/Ziad-004/TOC-Project/turing"
)

// Context carries the automata built so far and tallies check results.
type Context struct {
	Out        io.Writer
	TraceSteps int

	Pattern string
	NFA     *regexlib.NFA
	DFA     *regexlib.DFA
	TM      *turing.Machine

	Checks   int
	Failures int
}

// Summary prints the check tally and reports whether everything passed.
func (ctx *Context) Summary() bool {
	fmt.Fprintf(ctx.Out, "checks: %d, failures: %d\n", ctx.Checks, ctx.Failures)
	return ctx.Failures == 0
}
