package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
)

// BuiltinPoolName is the display name of the engine's own pool.
const BuiltinPoolName = "clif"

// builtinPool contributes the meta-commands available in every pool.
type builtinPool struct {
	domain.NopHooks
	e *Engine
}

func newBuiltinPool(e *Engine) *builtinPool {
	return &builtinPool{e: e}
}

func (b *builtinPool) Name() string { return BuiltinPoolName }

// Commands declares the built-ins. Multi-word names go through the engine's
// codec so they match the typed form whatever the internal separator is.
func (b *builtinPool) Commands() []domain.Command {
	return []domain.Command{
		domain.NewCommand("help", b.help,
			domain.WithHelp("Displays all available commands in the current command pool")),
		domain.NewArgsCommand("help", b.helpFor,
			domain.WithHelp("Displays the helptext of a specific command"),
			domain.WithArguments("<Name of command>", "(Has parameters [true | false], OPTIONAL)")),
		// Listed by help as a literal trailing line instead.
		domain.NewCommand("exit", b.exit,
			domain.WithHelp("Exits the current command pool and goes one layer up in the command pool hierarchy"),
			domain.Hidden()),
		domain.NewCommand(b.e.codec.Internalize("exit-all"), b.exitAll,
			domain.WithHelp("Exits all command pools")),
		domain.NewCommand(b.e.codec.Internalize("current-pool"), b.currentPool,
			domain.WithHelp("Displays the name of the currently active command pool")),
	}
}

func (b *builtinPool) help(ctx context.Context, inv domain.Invocation) error {
	w := b.e.Output()
	fmt.Fprintln(w, "\nAvailable commands:")
	for _, c := range b.e.Table().Visible() {
		name := b.e.codec.Externalize(c.Name)
		if c.Arity == domain.ArityVariadic && len(c.Arguments) > 0 {
			name += "  " + strings.Join(c.Arguments, "  ")
		}
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w, "exit")
	return nil
}

// helpFor prints the help text of args[0]. An optional second argument
// ("true" or anything else) picks the variadic or the 0-arg overload.
func (b *builtinPool) helpFor(ctx context.Context, inv domain.Invocation) error {
	if len(inv.Args) == 0 {
		return fmt.Errorf("%w: missing command name", domain.ErrNoSuchCommand)
	}
	table := b.e.Table()
	name := b.e.codec.Internalize(inv.Args[0])

	var (
		cmd domain.Command
		ok  bool
	)
	if len(inv.Args) < 2 {
		cmd, ok = table.HelpFor(name)
	} else {
		cmd, ok = table.Resolve(name, strings.EqualFold(inv.Args[1], "true"))
	}
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrNoSuchCommand, inv.Args[0])
	}

	fmt.Fprintln(b.e.Output(), cmd.Help)
	return nil
}

func (b *builtinPool) exit(ctx context.Context, inv domain.Invocation) error {
	return b.e.Exit(ctx)
}

func (b *builtinPool) exitAll(ctx context.Context, inv domain.Invocation) error {
	return b.e.ExitAll(ctx)
}

func (b *builtinPool) currentPool(ctx context.Context, inv domain.Invocation) error {
	name, err := b.e.PoolName()
	if err != nil {
		return err
	}
	fmt.Fprintln(b.e.Output(), name)
	return nil
}
