package regexlib

import (
	"strings"
	"testing"
)

// ------------------------------------------------------------------- helpers

func accepts(t *testing.T, d *DFA, input string, want bool) {
	t.Helper()
	if got := d.Accepts(input); got != want {
		t.Fatalf("Accepts(%q) = %v, want %v", input, got, want)
	}
}

func language(t *testing.T, pattern string, accept, reject []string) {
	t.Helper()
	d := CompileDFA(pattern)
	for _, s := range accept {
		accepts(t, d, s, true)
	}
	for _, s := range reject {
		accepts(t, d, s, false)
	}
}

// ------------------------------------------------------------------- parsing

func TestEmptyPattern(t *testing.T) {
	n := BuildNFA("")
	if len(n.States) != 1 {
		t.Fatalf("want 1 state, got %d", len(n.States))
	}
	if len(n.Alphabet) != 0 {
		t.Fatalf("want empty alphabet, got %q", string(n.Alphabet))
	}
	language(t, "", []string{""}, []string{"a", " "})
}

func TestLiteralsAndEscapes(t *testing.T) {
	language(t, "ab", []string{"ab"}, []string{"", "a", "b", "abc"})
	language(t, "a b", []string{"a b"}, []string{"ab"})
	language(t, "a\tb", []string{"a\tb"}, []string{"ab"})
	language(t, `\*`, []string{"*"}, []string{"", "a"})
	language(t, `a\+b`, []string{"a+b"}, []string{"ab", "aab"})
}

func TestUnrecognizedRunesSkipped(t *testing.T) {
	// '#', '{', '}' and friends contribute nothing to the language
	language(t, "a#b", []string{"ab"}, []string{"a#b", "a"})
	language(t, "{ab}", []string{"ab"}, []string{"{ab}"})
	language(t, "a@*", []string{"a"}, []string{"", "aa"})
}

func TestQuantifierAfterSkipIsSkipped(t *testing.T) {
	// '@' and the '*' after it each degrade to an epsilon fragment
	n := BuildNFA("a@*")
	if len(n.States) != 4 {
		t.Fatalf("want 4 states (char + two epsilons), got %d", len(n.States))
	}
}

func TestDoubleQuantifier(t *testing.T) {
	language(t, "a**", []string{"", "a", "aaa"}, []string{"b"})
}

func TestTrailingBackslash(t *testing.T) {
	language(t, `ab\`, []string{"ab"}, []string{`ab\`})
}

func TestGroupRecovery(t *testing.T) {
	// unclosed groups run to the end, a stray ')' ends the parse
	language(t, "(ab", []string{"ab"}, []string{"(ab"})
	language(t, "((a|b", []string{"a", "b"}, []string{""})
	language(t, "ab)cd", []string{"ab"}, []string{"abcd", "abc"})
}

func TestGroupDepthBound(t *testing.T) {
	pattern := strings.Repeat("(", maxGroupDepth+10) + "a"
	language(t, pattern, []string{"a"}, []string{"", "(a"})
}

// ------------------------------------------------------------------- NFA shape

func TestWildcardUniverse(t *testing.T) {
	n := BuildNFA(".")
	if len(n.Alphabet) != 62 {
		t.Fatalf("wildcard alphabet size %d, want 62", len(n.Alphabet))
	}
	d := SubsetConstruct(n)
	for _, s := range []string{"a", "Z", "0"} {
		accepts(t, d, s, true)
	}
	for _, s := range []string{"", "!", "ab"} {
		accepts(t, d, s, false)
	}
}

func TestPlusSharesStates(t *testing.T) {
	// a+ is a concatenated with a star over the same two states
	n := BuildNFA("a+")
	if len(n.States) != 4 {
		t.Fatalf("want 4 states, got %d", len(n.States))
	}
	language(t, "a+", []string{"a", "aaa"}, []string{"", "b"})
}

func TestSingleAcceptingState(t *testing.T) {
	for _, pattern := range []string{"", "a", "a|b", "(ab)+", "a?b", "a.c", "a**"} {
		n := BuildNFA(pattern)
		count := 0
		for _, s := range n.States {
			if s.Accepting {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("pattern %q: %d accepting states, want 1", pattern, count)
		}
		if !n.Accept.Accepting {
			t.Fatalf("pattern %q: Accept state not accepting", pattern)
		}
	}
}

func TestStateIDsDense(t *testing.T) {
	n := BuildNFA("a(b|c)*d")
	for i, s := range n.States {
		if s.ID != i {
			t.Fatalf("state %d has id %d", i, s.ID)
		}
	}
}

func TestBuildersIndependent(t *testing.T) {
	// a fresh build always numbers from zero
	a := BuildNFA("abc")
	b := BuildNFA("x")
	if a.Start.ID != 0 || b.Start.ID != 0 {
		t.Fatalf("start ids %d and %d, want 0 and 0", a.Start.ID, b.Start.ID)
	}
}

// ------------------------------------------------------------------- fallback

func TestCompileNeverFails(t *testing.T) {
	for _, pattern := range []string{"", ")(", "|||", "***", `\`, "((((", "a|"} {
		d := CompileDFA(pattern)
		if d == nil || d.Start == nil {
			t.Fatalf("pattern %q: nil result", pattern)
		}
	}
}

func TestAlternationWithEmptyBranch(t *testing.T) {
	language(t, "a|", []string{"", "a"}, []string{"b", "aa"})
	language(t, "|a", []string{"", "a"}, []string{"b"})
}
