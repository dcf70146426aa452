// Package shell is the interactive console around the regex-to-Turing
// machine pipeline: prompts, structure dumps, step traces and test
// suggestions.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/Ziad-004/TOC-Project/regexlib"
	"github.com/Ziad-004/TOC-Project/turing"
)

type Console struct {
	cfg Config
	out io.Writer
}

func New(cfg Config) *Console {
	return &Console{cfg: cfg, out: os.Stdout}
}

// session bundles everything compiled from one pattern.
type session struct {
	pattern string
	dfa     *regexlib.DFA
	tm      *turing.Machine
}

// Run drives the interactive loop: read a pattern, compile and dump it,
// then test strings against it until the user moves on. It returns nil
// on 'exit', interrupt or end of input.
func (c *Console) Run() error {
	c.banner()
	for {
		pattern, err := c.prompt("Enter a regular expression (or 'exit' to quit)")
		if err != nil {
			return promptExit(err)
		}
		if pattern == "exit" {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if strings.TrimSpace(pattern) == "" {
			fmt.Fprintln(c.out, c.style(promptui.FGYellow, "Please enter a regular expression."))
			continue
		}
		sess := c.compile(pattern)
		if err := c.testLoop(sess); err != nil {
			return promptExit(err)
		}
	}
}

func (c *Console) banner() {
	fmt.Fprintln(c.out, "=== Regex to Turing Machine Converter ===")
	fmt.Fprintln(c.out, "Pipeline: regex -> NFA -> DFA -> Turing machine")
	fmt.Fprintln(c.out, `Operators: | * + ? . ( ) and \ escapes; letters, digits, space and tab are literals.`)
	fmt.Fprintln(c.out, "Anything else in a pattern is skipped.")
	fmt.Fprintln(c.out)
}

// compile builds the DFA and its machine, reports timing and dumps both
// structures.
func (c *Console) compile(pattern string) *session {
	start := time.Now()
	dfa := regexlib.CompileDFA(pattern)
	tm := turing.FromDFA(dfa)
	elapsed := time.Since(start)
	fmt.Fprintf(c.out, "Conversion completed in %d ms\n", elapsed.Milliseconds())
	slog.Debug("compiled pattern",
		slog.String("pattern", pattern),
		slog.Int("dfa_states", len(dfa.States)),
		slog.Int("tm_rules", len(tm.Transitions)))
	fmt.Fprintln(c.out)
	regexlib.DescribeDFA(c.out, dfa)
	fmt.Fprintln(c.out)
	turing.Describe(c.out, tm)
	fmt.Fprintln(c.out)
	return &session{pattern: pattern, dfa: dfa, tm: tm}
}

// testLoop runs strings against the session until 'done'. Input is
// passed through untrimmed: spaces and tabs are legitimate literals.
func (c *Console) testLoop(sess *session) error {
	for {
		input, err := c.prompt("Test a string ('done' to finish, 'examples' for suggestions)")
		if err != nil {
			return err
		}
		switch input {
		case "done":
			return nil
		case "examples":
			Suggest(c.out, sess.pattern)
			continue
		}
		c.runTest(sess, input)
	}
}

// runTest prints both verdicts, the machine trace, and whether the two
// simulators agree.
func (c *Console) runTest(sess *session, input string) {
	if r, ok := reservedRune(input); ok {
		fmt.Fprintln(c.out, c.style(promptui.FGYellow,
			fmt.Sprintf("⚠ Input contains the reserved tape symbol %q; verdicts may differ.", r)))
	}
	dfaAccepted := sess.dfa.Accepts(input)
	c.verdict("DFA", dfaAccepted)
	fmt.Fprintln(c.out, "Running the Turing machine:")
	res := sess.tm.Execute(input, TraceWriter(c.out, c.cfg.TraceSteps))
	c.verdict("TM", res.Accepted)
	fmt.Fprintf(c.out, "Final state: %s (%s, %d steps)\n", res.FinalState, res.Cause, res.Steps)
	if dfaAccepted == res.Accepted {
		fmt.Fprintln(c.out, c.style(promptui.FGGreen, "✓ Results match"))
	} else {
		fmt.Fprintln(c.out, c.style(promptui.FGRed, "⚠ Results do not match"))
		slog.Warn("simulators disagree",
			slog.String("pattern", sess.pattern),
			slog.String("input", input))
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 30))
}

func (c *Console) verdict(name string, accepted bool) {
	if accepted {
		fmt.Fprintln(c.out, c.style(promptui.FGGreen, name+": ACCEPTED"))
	} else {
		fmt.Fprintln(c.out, c.style(promptui.FGRed, name+": REJECTED"))
	}
}

func (c *Console) prompt(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	return p.Run()
}

func (c *Console) style(attr promptui.Attribute, s string) string {
	if !c.cfg.Color {
		return s
	}
	return promptui.Styler(attr)(s)
}

// reservedRune reports the first reserved tape symbol in input, if any.
func reservedRune(input string) (rune, bool) {
	for _, r := range input {
		if r == turing.Blank || r == turing.EndMarker {
			return r, true
		}
	}
	return 0, false
}

// promptExit turns an interrupt or end of input into a clean shutdown.
func promptExit(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
