package interpreter

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/Ziad-004/TOC-Project/internal/shell"
	"github.com/Ziad-004/TOC-Project/regexlib"
	"github.com/Ziad-004/TOC-Project/turing"
)

type Script struct {
	Commands []*Command `parser:"@@*"`
}

type Command struct {
	Pattern *PatternCmd `parser:"@@ ';'"`
	Expect  *ExpectCmd  `parser:"| @@ ';'"`
	Show    *ShowCmd    `parser:"| @@ ';'"`
	Trace   *TraceCmd   `parser:"| @@ ';'"`
	Suggest *SuggestCmd `parser:"| @@ ';'"`
}

// PatternCmd compiles a pattern and makes it current for the commands
// after it.
type PatternCmd struct {
	Value string `parser:"'pattern' @String"`
}

// ExpectCmd checks a string against both simulators.
type ExpectCmd struct {
	Verdict string `parser:"'expect' @('accept'|'reject')"`
	Input   string `parser:"@String"`
}

// ShowCmd dumps the structure of one pipeline stage.
type ShowCmd struct {
	What string `parser:"'show' @('nfa'|'dfa'|'tm')"`
}

// TraceCmd runs the machine and prints its steps.
type TraceCmd struct {
	Input string `parser:"'trace' @String"`
	Limit *int   `parser:"('limit' @Int)?"`
}

type SuggestCmd struct {
	Keyword bool `parser:"@'suggest'"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(data string) (*Script, error) {
	return parser.ParseString("input", data)
}

func (s *Script) Exec(ctx *Context) error {
	for _, cmd := range s.Commands {
		if err := cmd.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) Exec(ctx *Context) error {
	switch {
	case c.Pattern != nil:
		ctx.Pattern = c.Pattern.Value
		ctx.NFA = regexlib.BuildNFA(c.Pattern.Value)
		ctx.DFA = regexlib.SubsetConstruct(ctx.NFA)
		ctx.TM = turing.FromDFA(ctx.DFA)
		fmt.Fprintf(ctx.Out, "pattern %q: %d NFA states, %d DFA states, %d TM rules\n",
			ctx.Pattern, len(ctx.NFA.States), len(ctx.DFA.States), len(ctx.TM.Transitions))
	case c.Expect != nil:
		if ctx.DFA == nil {
			return fmt.Errorf("expect before any pattern")
		}
		want := c.Expect.Verdict == "accept"
		dfaGot := ctx.DFA.Accepts(c.Expect.Input)
		tmGot := ctx.TM.Run(c.Expect.Input)
		ctx.Checks++
		if dfaGot == want && tmGot == want {
			fmt.Fprintf(ctx.Out, "ok   %s %q\n", c.Expect.Verdict, c.Expect.Input)
		} else {
			ctx.Failures++
			fmt.Fprintf(ctx.Out, "FAIL %s %q: dfa=%s tm=%s\n",
				c.Expect.Verdict, c.Expect.Input, verdict(dfaGot), verdict(tmGot))
		}
		if dfaGot != tmGot {
			fmt.Fprintf(ctx.Out, "WARN simulators disagree on %q\n", c.Expect.Input)
		}
	case c.Show != nil:
		if ctx.DFA == nil {
			return fmt.Errorf("show before any pattern")
		}
		switch c.Show.What {
		case "nfa":
			regexlib.DescribeNFA(ctx.Out, ctx.NFA)
		case "dfa":
			regexlib.DescribeDFA(ctx.Out, ctx.DFA)
		case "tm":
			turing.Describe(ctx.Out, ctx.TM)
		}
	case c.Trace != nil:
		if ctx.TM == nil {
			return fmt.Errorf("trace before any pattern")
		}
		limit := ctx.TraceSteps
		if c.Trace.Limit != nil {
			limit = *c.Trace.Limit
		}
		fmt.Fprintf(ctx.Out, "trace %q:\n", c.Trace.Input)
		res := ctx.TM.Execute(c.Trace.Input, shell.TraceWriter(ctx.Out, limit))
		fmt.Fprintf(ctx.Out, "%s after %d steps (%s)\n", verdict(res.Accepted), res.Steps, res.Cause)
	case c.Suggest != nil:
		if ctx.Pattern == "" {
			return fmt.Errorf("suggest before any pattern")
		}
		shell.Suggest(ctx.Out, ctx.Pattern)
	}
	return nil
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
