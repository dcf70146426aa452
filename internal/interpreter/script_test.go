package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exec(t *testing.T, src string) (*Context, string, error) {
	t.Helper()
	script, err := Parse(src)
	require.NoError(t, err)
	var buf bytes.Buffer
	ctx := &Context{Out: &buf, TraceSteps: 10}
	err = script.Exec(ctx)
	return ctx, buf.String(), err
}

func TestScriptFullSession(t *testing.T) {
	src := `
pattern "a(b|c)*";
expect accept "abc";
expect accept "a";
expect reject "x";
show dfa;
trace "ab" limit 3;
suggest;
`
	ctx, out, err := exec(t, src)
	require.NoError(t, err)
	assert.Equal(t, 3, ctx.Checks)
	assert.Zero(t, ctx.Failures)
	assert.Contains(t, out, "=== DFA Structure ===")
	assert.Contains(t, out, "Step 1:")
	assert.Contains(t, out, "Suggested test cases")
}

func TestScriptCountsFailures(t *testing.T) {
	src := `
pattern "a";
expect reject "a";
expect accept "a";
`
	ctx, out, err := exec(t, src)
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.Checks)
	assert.Equal(t, 1, ctx.Failures)
	assert.Contains(t, out, "FAIL reject \"a\"")
	assert.Contains(t, out, "ok   accept \"a\"")

	var buf bytes.Buffer
	ctx.Out = &buf
	assert.False(t, ctx.Summary())
	assert.Contains(t, buf.String(), "failures: 1")
}

func TestScriptSecondPatternReplacesFirst(t *testing.T) {
	src := `
pattern "a";
expect accept "a";
pattern "b";
expect accept "b";
expect reject "a";
`
	ctx, _, err := exec(t, src)
	require.NoError(t, err)
	assert.Equal(t, 3, ctx.Checks)
	assert.Zero(t, ctx.Failures)
}

func TestScriptShowStages(t *testing.T) {
	_, out, err := exec(t, `pattern "ab"; show nfa; show tm;`)
	require.NoError(t, err)
	assert.Contains(t, out, "=== NFA Structure ===")
	assert.Contains(t, out, "=== Turing Machine Structure ===")
}

func TestScriptEscapedPattern(t *testing.T) {
	ctx, _, err := exec(t, `pattern "\\*"; expect accept "*"; expect reject "a";`)
	require.NoError(t, err)
	assert.Zero(t, ctx.Failures)
}

func TestScriptTraceDefaultLimit(t *testing.T) {
	_, out, err := exec(t, `pattern "a*"; trace "aaaaaaaaaaaaaaa";`)
	require.NoError(t, err)
	assert.Contains(t, out, "showing only the first 10 steps")
	assert.Contains(t, out, "accept after 16 steps")
}

func TestScriptCommandsBeforePattern(t *testing.T) {
	for _, src := range []string{
		`expect accept "a";`,
		`show dfa;`,
		`trace "a";`,
		`suggest;`,
	} {
		script, err := Parse(src)
		require.NoError(t, err)
		err = script.Exec(&Context{Out: &bytes.Buffer{}})
		assert.Error(t, err, "source %q", src)
	}
}

func TestScriptParseErrors(t *testing.T) {
	for _, src := range []string{
		`pattern a;`,
		`pattern "a"`,
		`expect maybe "a";`,
		`show regex;`,
	} {
		_, err := Parse(src)
		assert.Error(t, err, "source %q", src)
	}
}

func TestScriptReportsDisagreement(t *testing.T) {
	// '_' is the machine's blank, so the tape ends early and the two
	// simulators legitimately differ
	_, out, err := exec(t, `pattern "a"; expect accept "a_";`)
	require.NoError(t, err)
	assert.Contains(t, out, "WARN simulators disagree")
}
