package clif

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/clif/internal/runtime"
	"github.com/aretw0/clif/pkg/console"
	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/naming"
	"github.com/aretw0/clif/pkg/ports"
)

// Version is the library version reported by the clif binary.
const Version = "0.3.0"

// CLI is the high-level entry point for the clif library.
// It wraps the internal runtime and owns the read-dispatch-report loop.
type CLI struct {
	runtime *runtime.Engine

	source   ports.LineSource
	input    io.Reader
	out      io.Writer
	errOut   io.Writer
	prompt   string
	maxInput int
	codec    naming.Codec
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the CLI.
type Option func(*CLI)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CLI) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *CLI) {
		c.hooks = hooks
	}
}

// WithInput reads lines from r through a console.TextHandler.
func WithInput(r io.Reader) Option {
	return func(c *CLI) {
		c.input = r
	}
}

// WithLineSource injects a custom line source. It takes precedence over WithInput.
func WithLineSource(src ports.LineSource) Option {
	return func(c *CLI) {
		c.source = src
	}
}

// WithOutput sets where command output and reports are written.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) {
		c.out = w
	}
}

// WithErrorOutput sets where fatal faults are reported.
func WithErrorOutput(w io.Writer) Option {
	return func(c *CLI) {
		c.errOut = w
	}
}

// WithCodec sets the command name codec.
func WithCodec(codec naming.Codec) Option {
	return func(c *CLI) {
		c.codec = codec
	}
}

// WithPrompt prints prompt before each read. Only applies to the default text source.
func WithPrompt(prompt string) Option {
	return func(c *CLI) {
		c.prompt = prompt
	}
}

// WithMaxInputSize limits accepted line length. Only applies to the default text source.
func WithMaxInputSize(n int) Option {
	return func(c *CLI) {
		c.maxInput = n
	}
}

// New creates a CLI. Without options it reads os.Stdin and writes os.Stdout.
func New(opts ...Option) *CLI {
	c := &CLI{}
	for _, opt := range opts {
		opt(c)
	}

	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.source == nil {
		c.source = console.NewTextHandler(c.input, c.out,
			console.WithPrompt(c.prompt),
			console.WithMaxInputSize(c.maxInput),
		)
	}

	runtimeOpts := []runtime.Option{
		runtime.WithLogger(c.logger),
		runtime.WithLifecycleHooks(c.hooks),
		runtime.WithOutput(c.out),
		runtime.WithLineSource(c.source),
	}
	if c.codec != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithCodec(c.codec))
	}
	c.runtime = runtime.NewEngine(runtimeOpts...)
	return c
}

// ID returns the engine instance id, also attached to every log line.
func (c *CLI) ID() string {
	return c.runtime.ID()
}

// Controller exposes the running engine, e.g. to push pools from the host.
func (c *CLI) Controller() domain.Controller {
	return c.runtime
}

// PoolName returns the display name of the focused pool.
func (c *CLI) PoolName() (string, error) {
	return c.runtime.PoolName()
}

// Depth returns the number of active pools.
func (c *CLI) Depth() int {
	return c.runtime.Depth()
}

// Commands returns the commands invocable right now.
func (c *CLI) Commands() []domain.Command {
	return c.runtime.Commands()
}

// Refresh rebuilds the command table for the focused pool.
func (c *CLI) Refresh() error {
	return c.runtime.Refresh()
}

// IsFatal reports whether err, as returned by Run, ends the program rather
// than a single command. User-shaped errors never escape Run, so any non-nil
// error from Run is fatal; IsFatal also classifies raw Dispatch errors.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrEmptyStack) {
		return true
	}
	var execErr *domain.CommandExecutionError
	return !errors.Is(err, domain.ErrNoSuchCommand) && !errors.As(err, &execErr)
}

// Dispatch runs a single line against the focused pool without reporting.
// Hosts driving the engine themselves use it instead of Run.
func (c *CLI) Dispatch(ctx context.Context, line string) error {
	return c.runtime.Dispatch(ctx, line)
}
