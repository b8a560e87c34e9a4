package demo_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/clif"
	"github.com/aretw0/clif/internal/demo"
	"github.com/aretw0/clif/pkg/console"
	"github.com/aretw0/clif/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	cli := clif.New(
		clif.WithLineSource(console.NewScriptSource(lines...)),
		clif.WithOutput(&out),
		clif.WithErrorOutput(&out),
	)
	require.NoError(t, cli.Run(context.Background(), demo.Root(nil)))
	return out.String()
}

func TestRoot_Greet(t *testing.T) {
	out := run(t, "greet", "greet Ada Lovelace", "echo a b  c", "exit")

	assert.Contains(t, out, "Welcome to the clif demo.")
	assert.Contains(t, out, "Hello!\n")
	assert.Contains(t, out, "Hello, Ada Lovelace!\n")
	assert.Contains(t, out, "a b  c\n")
	assert.Contains(t, out, "Exiting pool: Main\n")
}

func TestRoot_Guide(t *testing.T) {
	out := run(t, "guide", "exit")
	assert.Contains(t, out, "# clif demo")
}

func TestRoot_Map(t *testing.T) {
	out := run(t, "map", "exit")

	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, `p0(("Main"))`)
	assert.Contains(t, out, `[/"greet &lt;Name&gt;"/]`)
	assert.Contains(t, out, "class p0 current;")
}

func TestCalculator(t *testing.T) {
	out := run(t, "calc", "current-pool", "add 2 3", "mul 4", "add x 1", "sub 0.5", "total", "exit", "exit")

	assert.Contains(t, out, "Calculator ready. Total is 0\n")
	assert.Contains(t, out, "Calculator\n")
	assert.Contains(t, out, "Total: 5\n")
	assert.Contains(t, out, "Total: 20\n")
	assert.Contains(t, out, `Exception while processing command: not a number: "x"`)
	assert.Contains(t, out, "Total: 19.5\n")
	assert.Contains(t, out, "Final total: 19.5\nExiting pool: Calculator\nBack in Main\n")
}

func TestCalculator_FreshTotalPerPush(t *testing.T) {
	out := run(t, "calc", "add 7", "exit", "calc", "total", "exit", "exit")
	assert.Contains(t, out, "Final total: 7\n")
	assert.Contains(t, out, "Total: 0\n")
}

func TestCalculator_TrailingSpaces(t *testing.T) {
	out := run(t, "calc", "add  ", "add  4", "exit", "exit")

	// "add  " has no argument tokens, so it does not match the variadic "add".
	assert.Contains(t, out, clif.MsgUnsupportedCommand)
	assert.Contains(t, out, "Total: 4\n")
}

func TestNotes_PersistAcrossVisits(t *testing.T) {
	out := run(t,
		"notes", "last-note", "add buy milk", "add call Bob", "exit",
		"notes", "list", "last-note", "exit", "exit",
	)

	assert.Contains(t, out, "Notes open, 0 kept\n")
	assert.Contains(t, out, demo.ErrNoNotes.Error())
	assert.Contains(t, out, "Noted (2)\n")
	assert.Contains(t, out, "Notes open, 2 kept\n")
	assert.Contains(t, out, "1. buy milk\n2. call Bob\n")
	assert.Contains(t, out, "call Bob\n")
}

func TestNotes_NestedCalculatorAndExitAll(t *testing.T) {
	out := run(t, "notes", "add x", "calc", "add 1", "exit", "current-pool", "calc", "exit-all")

	assert.Contains(t, out, "Exiting pool: Calculator\nBack in Notes\n")
	assert.Contains(t, out, "Notes\n")
	assert.Contains(t, out, "Final total: 0\n1 note(s) kept\nExited all command pools\n")
}

func TestNotes_ClearAndEmpty(t *testing.T) {
	n := demo.NewNotes()
	var out bytes.Buffer
	cli := clif.New(
		clif.WithLineSource(console.NewScriptSource("add first", "clear", "list", "add \t", "exit")),
		clif.WithOutput(&out),
	)
	require.NoError(t, cli.Run(context.Background(), n))

	assert.Empty(t, n.Items())
	assert.Contains(t, out.String(), "Notes cleared\n")
	assert.Contains(t, out.String(), "No notes\n")
	assert.Contains(t, out.String(), clif.MsgCommandException+"empty note")
}

func TestCalculator_Direct(t *testing.T) {
	c := demo.NewCalculator()
	var out bytes.Buffer
	cli := clif.New(
		clif.WithLineSource(console.NewScriptSource("add 1.5 1.5", "clear", "mul 3")),
		clif.WithOutput(&out),
	)

	err := cli.Run(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrEndOfInput)
	assert.Equal(t, 0.0, c.Total())
	assert.Contains(t, out.String(), "Total: 3\nTotal: 0\n")
}
