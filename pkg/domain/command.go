package domain

import (
	"context"
	"fmt"
)

// Arity is the call shape a command accepts.
type Arity int

const (
	// ArityNone commands are invoked by a line holding only their name.
	ArityNone Arity = iota
	// ArityVariadic commands receive every token after the name as one list.
	ArityVariadic
)

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityVariadic:
		return "variadic"
	default:
		return fmt.Sprintf("arity(%d)", int(a))
	}
}

// DefaultHelp is shown for commands declared without help text.
const DefaultHelp = "No helptext available"

// Invocation carries what a handler receives for one dispatch.
type Invocation struct {
	Controller Controller
	// Args is nil for ArityNone commands.
	Args []string
}

// Handler implements a command.
type Handler func(ctx context.Context, inv Invocation) error

// Command describes one invocable command.
type Command struct {
	// Name is the internal form (words joined by the internal separator).
	Name      string
	Arity     Arity
	Help      string
	Arguments []string
	// Hidden commands are invocable but left out of the help listing.
	Hidden  bool
	Handler Handler
	// Owner is set by the registry when the command table is built.
	Owner Pool
}

// CommandOption configures a Command built with NewCommand or NewArgsCommand.
type CommandOption func(*Command)

// WithHelp sets the help text.
func WithHelp(help string) CommandOption {
	return func(c *Command) {
		c.Help = help
	}
}

// WithArguments sets the argument descriptions shown by "help".
func WithArguments(args ...string) CommandOption {
	return func(c *Command) {
		c.Arguments = args
	}
}

// Hidden leaves the command out of the help listing.
func Hidden() CommandOption {
	return func(c *Command) {
		c.Hidden = true
	}
}

// NewCommand declares a command that takes no arguments.
func NewCommand(name string, h Handler, opts ...CommandOption) Command {
	return newCommand(name, ArityNone, h, opts)
}

// NewArgsCommand declares a command that receives the remaining tokens.
func NewArgsCommand(name string, h Handler, opts ...CommandOption) Command {
	return newCommand(name, ArityVariadic, h, opts)
}

func newCommand(name string, arity Arity, h Handler, opts []CommandOption) Command {
	c := Command{
		Name:    name,
		Arity:   arity,
		Handler: h,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Matches reports whether c answers to the internal name and call shape.
func (c Command) Matches(name string, hasArgs bool) bool {
	if c.Name != name {
		return false
	}
	if hasArgs {
		return c.Arity == ArityVariadic
	}
	return c.Arity == ArityNone
}
