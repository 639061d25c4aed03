package repl

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommands(r *REPL, cmds ...string) string {
	var buf bytes.Buffer
	for _, c := range cmds {
		r.handleCommand(c, &buf)
	}
	return buf.String()
}

func TestREPLInputAndCaseThenCompile(t *testing.T) {
	r := New()
	out := runCommands(r,
		`:input "ok" | "err"`,
		`:case "ok"`,
		`:case "err"`,
		":compile",
	)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "compiled 2 case(s)")
}

func TestREPLCheckBeforeCompileErrors(t *testing.T) {
	r := New()
	out := runCommands(r, `:check "x"`)
	assert.Contains(t, out, "no tree compiled yet")
}

func TestREPLCheckDispatchesToCase(t *testing.T) {
	r := New()
	out := runCommands(r,
		`:input "ok" | "err"`,
		`:case "ok"`,
		`:case "err"`,
		":compile",
		`:check "err"`,
	)
	assert.Contains(t, out, "case 1")
}

func TestREPLCheckFallsThroughToDefault(t *testing.T) {
	r := New()
	out := runCommands(r,
		`:input "ok" | "err"`,
		`:case "ok"`,
		":compile",
		`:check "err"`,
	)
	assert.Contains(t, out, "case -1")
}

func TestREPLRejectsMalformedTypeExpr(t *testing.T) {
	r := New()
	out := runCommands(r, `:input {a: }`)
	assert.Contains(t, strings.ToLower(out), "error")
}

func TestREPLResetClearsCases(t *testing.T) {
	r := New()
	out := runCommands(r,
		`:case "ok"`,
		":reset",
		":compile",
		`:check "ok"`,
	)
	assert.Contains(t, out, "case -1")
}

func TestREPLUnknownCommand(t *testing.T) {
	r := New()
	out := runCommands(r, ":bogus")
	assert.Contains(t, out, "unknown command")
}

func TestParseCheckValueUndefinedTag(t *testing.T) {
	v, err := parseCheckValue(`{"$undefined": true}`)
	require.NoError(t, err)
	assert.Equal(t, "evaltree.Undefined", fmt.Sprintf("%T", v))
}

func TestParseCheckValueRejectsEmpty(t *testing.T) {
	_, err := parseCheckValue("")
	require.Error(t, err)
}
