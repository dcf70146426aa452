package regexlib

import (
	"bytes"
	"strings"
	"testing"
)

func TestDescribeDFA(t *testing.T) {
	var buf bytes.Buffer
	DescribeDFA(&buf, CompileDFA("a"))
	out := buf.String()
	for _, want := range []string{"=== DFA Structure ===", "Start: q0", "Accepting: q1", "Dead states: none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeDFAFallback(t *testing.T) {
	var buf bytes.Buffer
	DescribeDFA(&buf, emptyDFA())
	out := buf.String()
	if !strings.Contains(out, "Transitions: none") || !strings.Contains(out, "Accepting: none") {
		t.Fatalf("fallback dump wrong:\n%s", out)
	}
}

func TestDescribeNFA(t *testing.T) {
	var buf bytes.Buffer
	DescribeNFA(&buf, BuildNFA("ab"))
	out := buf.String()
	if !strings.Contains(out, "=== NFA Structure ===") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "-a->") || !strings.Contains(out, "-ε->") {
		t.Fatalf("missing edges:\n%s", out)
	}
}

func TestExportDOT(t *testing.T) {
	var buf bytes.Buffer
	ExportDOT(&buf, CompileDFA("a"))
	out := buf.String()
	for _, want := range []string{"digraph G {", "doublecircle", "_start -> q0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("DOT missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	ExportDOT(&buf, BuildNFA("a|b"))
	out = buf.String()
	if !strings.Contains(out, "_start -> n") || !strings.Contains(out, "ε") {
		t.Fatalf("NFA DOT wrong:\n%s", out)
	}

	buf.Reset()
	ExportDOT(&buf, 42)
	if !strings.Contains(buf.String(), "unknown graph type") {
		t.Fatalf("unknown type not reported:\n%s", buf.String())
	}
}
