// Package demo holds the pools behind "clif demo".
package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/clif/internal/presentation/graph"
	"github.com/aretw0/clif/internal/presentation/tui"
	"github.com/aretw0/clif/pkg/domain"
)

// RootName is the display name of the demo's root pool.
const RootName = "Main"

const guide = `# clif demo

Commands live in **pools**. The pool on top of the stack receives input;
built-ins such as ` + "`help`" + ` and ` + "`exit`" + ` are always available.

## Pools

- ` + "`calc`" + ` opens a calculator with a running total.
- ` + "`notes`" + ` opens a notebook that keeps its notes between visits.
- ` + "`map`" + ` draws the current stack as a Mermaid diagram.

Type ` + "`exit`" + ` to leave a pool, ` + "`exit-all`" + ` to quit.
`

// Root builds the demo's root pool. A nil render prints the guide as plain
// markdown.
func Root(render tui.Renderer) domain.Pool {
	if render == nil {
		render = tui.Plain
	}
	notes := NewNotes()

	return domain.NewPool(RootName,
		domain.PoolHooks{
			OnStart: func(ctx context.Context, c domain.Controller) {
				fmt.Fprintln(c.Output(), "Welcome to the clif demo. Type help for a list of commands.")
			},
			OnResume: func(ctx context.Context, c domain.Controller) {
				fmt.Fprintln(c.Output(), "Back in "+RootName)
			},
		},
		domain.NewCommand("greet", func(ctx context.Context, inv domain.Invocation) error {
			fmt.Fprintln(inv.Controller.Output(), "Hello!")
			return nil
		}, domain.WithHelp("Greets you")),
		domain.NewArgsCommand("greet", func(ctx context.Context, inv domain.Invocation) error {
			fmt.Fprintf(inv.Controller.Output(), "Hello, %s!\n", strings.Join(inv.Args, " "))
			return nil
		}, domain.WithHelp("Greets someone by name"), domain.WithArguments("<Name>")),
		domain.NewArgsCommand("echo", func(ctx context.Context, inv domain.Invocation) error {
			fmt.Fprintln(inv.Controller.Output(), strings.Join(inv.Args, " "))
			return nil
		}, domain.WithHelp("Prints its arguments"), domain.WithArguments("<Words>")),
		domain.NewCommand("calc", func(ctx context.Context, inv domain.Invocation) error {
			return inv.Controller.Push(ctx, NewCalculator())
		}, domain.WithHelp("Opens the calculator pool")),
		domain.NewCommand("notes", func(ctx context.Context, inv domain.Invocation) error {
			return inv.Controller.Push(ctx, notes)
		}, domain.WithHelp("Opens the notes pool")),
		domain.NewCommand("map", func(ctx context.Context, inv domain.Invocation) error {
			fmt.Fprint(inv.Controller.Output(), graph.GenerateMermaid(inv.Controller.Pools(), inv.Controller.Codec()))
			return nil
		}, domain.WithHelp("Prints the pool stack as a Mermaid diagram")),
		domain.NewCommand("guide", func(ctx context.Context, inv domain.Invocation) error {
			out, err := render(guide)
			if err != nil {
				return err
			}
			fmt.Fprint(inv.Controller.Output(), out)
			return nil
		}, domain.WithHelp("Shows a short guide")),
	)
}
