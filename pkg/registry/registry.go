// Package registry builds the command tables the engine dispatches against.
//
// A table is a snapshot: the focused pool's declared commands followed by the
// engine's built-ins. Pools stay the source of truth; a table is rebuilt
// whenever the focused pool changes.
package registry

import (
	"fmt"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/naming"
)

type commandKey struct {
	name  string
	arity domain.Arity
}

// Declared returns the commands declared by pool, in declaration order, with
// defaults applied and the owner set.
func Declared(pool domain.Pool) ([]domain.Command, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: nil pool", domain.ErrInvalidCommand)
	}

	declared := pool.Commands()
	out := make([]domain.Command, 0, len(declared))
	seen := make(map[commandKey]struct{}, len(declared))

	for _, cmd := range declared {
		if !naming.Valid(cmd.Name) {
			return nil, fmt.Errorf("%w: pool %s: bad name %q", domain.ErrInvalidCommand, pool.Name(), cmd.Name)
		}
		if cmd.Arity != domain.ArityNone && cmd.Arity != domain.ArityVariadic {
			return nil, fmt.Errorf("%w: pool %s: command %s has %s", domain.ErrInvalidCommand, pool.Name(), cmd.Name, cmd.Arity)
		}
		if cmd.Handler == nil {
			return nil, fmt.Errorf("%w: pool %s: command %s has no handler", domain.ErrInvalidCommand, pool.Name(), cmd.Name)
		}

		key := commandKey{cmd.Name, cmd.Arity}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: pool %s: %s (%s)", domain.ErrDuplicateCommand, pool.Name(), cmd.Name, cmd.Arity)
		}
		seen[key] = struct{}{}

		if cmd.Help == "" {
			cmd.Help = domain.DefaultHelp
		}
		if cmd.Arguments == nil {
			cmd.Arguments = []string{}
		} else {
			args := make([]string, len(cmd.Arguments))
			copy(args, cmd.Arguments)
			cmd.Arguments = args
		}
		cmd.Owner = pool
		out = append(out, cmd)
	}
	return out, nil
}

// Table is the ordered list of commands visible right now.
type Table struct {
	commands []domain.Command
	// poolLen is the number of leading entries owned by the focused pool.
	poolLen int
}

// BuildTable concatenates the focused pool's commands and the built-ins.
// Pool commands come first, so they win over a built-in of the same name and arity.
func BuildTable(current, builtins domain.Pool) (*Table, error) {
	poolCmds, err := Declared(current)
	if err != nil {
		return nil, err
	}
	builtinCmds, err := Declared(builtins)
	if err != nil {
		return nil, err
	}

	cmds := make([]domain.Command, 0, len(poolCmds)+len(builtinCmds))
	cmds = append(cmds, poolCmds...)
	cmds = append(cmds, builtinCmds...)
	return &Table{commands: cmds, poolLen: len(poolCmds)}, nil
}

// Empty returns a table with no commands.
func Empty() *Table {
	return &Table{}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.commands)
}

// Commands returns a copy of every entry, in resolution order.
func (t *Table) Commands() []domain.Command {
	out := make([]domain.Command, len(t.commands))
	copy(out, t.commands)
	return out
}

// Visible returns the entries that appear in the help listing.
func (t *Table) Visible() []domain.Command {
	out := make([]domain.Command, 0, len(t.commands))
	for _, c := range t.commands {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Resolve returns the first entry matching the internal name and call shape.
func (t *Table) Resolve(name string, hasArgs bool) (domain.Command, bool) {
	for _, c := range t.commands {
		if c.Matches(name, hasArgs) {
			return c, true
		}
	}
	return domain.Command{}, false
}

// Lookup returns the first entry with the given name and arity.
func (t *Table) Lookup(name string, arity domain.Arity) (domain.Command, bool) {
	return t.Resolve(name, arity == domain.ArityVariadic)
}

// HelpFor returns the entry "help <name>" describes: the 0-arg overload if
// there is one, otherwise the variadic one.
func (t *Table) HelpFor(name string) (domain.Command, bool) {
	if c, ok := t.Lookup(name, domain.ArityNone); ok {
		return c, true
	}
	return t.Lookup(name, domain.ArityVariadic)
}

// Shadowed returns the built-in entries that can no longer be reached because
// the focused pool declares the same name and arity.
func (t *Table) Shadowed() []domain.Command {
	if t.poolLen == 0 {
		return nil
	}
	pool := make(map[commandKey]struct{}, t.poolLen)
	for _, c := range t.commands[:t.poolLen] {
		pool[commandKey{c.Name, c.Arity}] = struct{}{}
	}

	var shadowed []domain.Command
	for _, c := range t.commands[t.poolLen:] {
		if _, ok := pool[commandKey{c.Name, c.Arity}]; ok {
			shadowed = append(shadowed, c)
		}
	}
	return shadowed
}
