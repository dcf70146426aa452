package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Ziad-004/TOC-Project/internal/interpreter"
	"github.com/Ziad-004/TOC-Project/internal/shell"
	"github.com/Ziad-004/TOC-Project/regexlib"
	"github.com/Ziad-004/TOC-Project/turing"
)

var (
	rootCmd = &cobra.Command{
		Use:   "toc",
		Short: "Convert regular expressions to Turing machines and run them",
		Long: `toc compiles a regular expression through a Thompson NFA and a
subset-constructed DFA into a single-tape Turing machine, then lets you
test strings against both simulators.`,
		Run: runRepl,
	}

	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Interactive console (the default when no subcommand is given)",
		Run:   runRepl,
	}

	runCmd = &cobra.Command{
		Use:   "run [script file]",
		Short: "Execute a session script",
		Long: `Runs a script of semicolon-terminated session commands:

  pattern "a(b|c)*";
  expect accept "abc";
  expect reject "x";
  show tm;
  trace "abc" limit 5;
  suggest;

Exits non-zero when any expect fails.`,
		Args: cobra.ExactArgs(1),
		Run:  runScript,
	}

	checkPattern string
	checkCmd     = &cobra.Command{
		Use:   "check [strings...]",
		Short: "Print both simulator verdicts for each string",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCheck,
	}

	vizPattern string
	vizNFA     bool
	vizTM      bool
	vizOut     string
	vizPNG     bool
	vizCmd     = &cobra.Command{
		Use:   "viz",
		Short: "Export a pipeline stage as Graphviz DOT",
		Run:   runViz,
	}
)

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkPattern, "pattern", "p", "", "pattern to compile")
	checkCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&vizPattern, "pattern", "p", "", "pattern to compile")
	vizCmd.Flags().BoolVar(&vizNFA, "nfa", false, "export the Thompson NFA")
	vizCmd.Flags().BoolVar(&vizTM, "tm", false, "export the Turing machine")
	vizCmd.Flags().StringVarP(&vizOut, "out", "o", "graph.dot", "output file ('-' for stdout)")
	vizCmd.Flags().BoolVar(&vizPNG, "png", false, "render PNG via dot -Tpng")
	vizCmd.MarkFlagRequired("pattern")
}

func runRepl(cmd *cobra.Command, args []string) {
	if err := shell.New(cfg).Run(); err != nil {
		log.Fatalf("console: %v", err)
	}
}

func runScript(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	script, err := interpreter.Parse(string(data))
	if err != nil {
		log.Fatalf("parse %s: %v", args[0], err)
	}
	ctx := &interpreter.Context{Out: os.Stdout, TraceSteps: cfg.TraceSteps}
	if err := script.Exec(ctx); err != nil {
		log.Fatal(err)
	}
	if !ctx.Summary() {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) {
	dfa := regexlib.CompileDFA(checkPattern)
	tm := turing.FromDFA(dfa)
	mismatch := false
	for _, input := range args {
		d := dfa.Accepts(input)
		t := tm.Run(input)
		mark := "ok"
		if d != t {
			mark = "MISMATCH"
			mismatch = true
		}
		fmt.Printf("%q: dfa=%s tm=%s %s\n", input, verdict(d), verdict(t), mark)
	}
	if mismatch {
		os.Exit(1)
	}
}

// runViz renders the requested stage; --nfa wins over --tm, and the
// default is the DFA.
func runViz(cmd *cobra.Command, args []string) {
	var buf bytes.Buffer
	switch {
	case vizNFA:
		regexlib.ExportDOT(&buf, regexlib.BuildNFA(vizPattern))
	case vizTM:
		turing.ExportDOT(&buf, turing.FromDFA(regexlib.CompileDFA(vizPattern)))
	default:
		regexlib.ExportDOT(&buf, regexlib.CompileDFA(vizPattern))
	}

	if vizPNG {
		c := exec.Command("dot", "-Tpng", "-o", vizOut)
		c.Stdin = bytes.NewReader(buf.Bytes())
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", vizOut)
		return
	}

	var w io.Writer
	if vizOut == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(vizOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", vizOut, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if vizOut != "-" {
		fmt.Printf("DOT written to %s\n", vizOut)
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
