package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/naming"
	"github.com/aretw0/clif/pkg/ports"
	"github.com/aretw0/clif/pkg/registry"
	"github.com/aretw0/clif/pkg/stack"
	"github.com/google/uuid"
)

// Engine owns the pool stack and the active command table.
// It is single-threaded: exactly one command runs at a time, and handlers get
// exclusive access through the domain.Controller it implements.
type Engine struct {
	id       string
	stack    *stack.Stack
	table    *registry.Table
	builtins domain.Pool
	codec    naming.Codec
	source   ports.LineSource
	out      io.Writer
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	now      func() time.Time
}

var _ domain.Controller = (*Engine)(nil)

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithCodec sets the name codec used to translate typed tokens.
func WithCodec(codec naming.Codec) Option {
	return func(e *Engine) {
		e.codec = codec
	}
}

// WithOutput sets where built-ins and handlers write.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithLineSource sets the source ReadLine draws from.
func WithLineSource(src ports.LineSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithEngineID overrides the generated instance id.
func WithEngineID(id string) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// WithClock overrides the time source used for event timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine with an empty stack.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		stack:  stack.New(),
		table:  registry.Empty(),
		codec:  naming.Default,
		out:    io.Discard,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.codec == nil {
		e.codec = naming.Default
	}
	if e.out == nil {
		e.out = io.Discard
	}
	e.logger = e.logger.With("engine_id", e.id)
	e.builtins = newBuiltinPool(e)
	return e
}

// ID returns the engine instance id.
func (e *Engine) ID() string {
	return e.id
}

// Builtins returns the engine's own pool, the bottom-most fallback for resolution.
func (e *Engine) Builtins() domain.Pool {
	return e.builtins
}

// Push places p on top of the stack, rebuilds the table and starts p.
// The pool's declarations are validated first; on error the stack is unchanged.
func (e *Engine) Push(ctx context.Context, p domain.Pool) error {
	if p == nil {
		return fmt.Errorf("%w: nil pool", domain.ErrInvalidCommand)
	}
	table, err := registry.BuildTable(p, e.builtins)
	if err != nil {
		return fmt.Errorf("push %s: %w", p.Name(), err)
	}

	e.stack.Push(p)
	e.table = table
	e.warnShadowed(ctx, p, table)

	e.logger.Debug("pool pushed", "pool", p.Name(), "depth", e.stack.Size())
	e.emitPool(ctx, domain.EventPoolStart, e.hooks.OnPoolStart, p)
	p.OnStart(ctx, e)
	return nil
}

// Exit stops the focused pool and resumes the one below it, if any.
func (e *Engine) Exit(ctx context.Context) error {
	top, err := e.stack.Peek()
	if err != nil {
		return err
	}
	top.OnExit(ctx, e)

	popped, err := e.stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Exiting pool: "+popped.Name())
	e.logger.Debug("pool exited", "pool", popped.Name(), "depth", e.stack.Size())
	e.emitPool(ctx, domain.EventPoolExit, e.hooks.OnPoolExit, popped)

	if e.stack.Empty() {
		e.table = registry.Empty()
		return nil
	}

	if err := e.Refresh(); err != nil {
		return err
	}
	next, err := e.stack.Peek()
	if err != nil {
		return err
	}
	e.logger.Debug("pool resumed", "pool", next.Name(), "depth", e.stack.Size())
	e.emitPool(ctx, domain.EventPoolResume, e.hooks.OnPoolResume, next)
	next.OnResume(ctx, e)
	return nil
}

// ExitAll stops every pool from top to bottom, leaving the stack empty.
func (e *Engine) ExitAll(ctx context.Context) error {
	for !e.stack.Empty() {
		top, err := e.stack.Peek()
		if err != nil {
			return err
		}
		top.OnExit(ctx, e)

		popped, err := e.stack.Pop()
		if err != nil {
			return err
		}
		e.logger.Debug("pool exited", "pool", popped.Name(), "depth", e.stack.Size())
		e.emitPool(ctx, domain.EventPoolExit, e.hooks.OnPoolExit, popped)
	}
	e.table = registry.Empty()
	fmt.Fprintln(e.out, "Exited all command pools")
	return nil
}

// Refresh rebuilds the command table from the focused pool's declarations.
func (e *Engine) Refresh() error {
	top, err := e.stack.Peek()
	if err != nil {
		return err
	}
	table, err := registry.BuildTable(top, e.builtins)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", top.Name(), err)
	}
	e.table = table
	return nil
}

// Current returns the focused pool.
func (e *Engine) Current() (domain.Pool, error) {
	return e.stack.Peek()
}

// PoolName returns the display name of the focused pool.
func (e *Engine) PoolName() (string, error) {
	top, err := e.stack.Peek()
	if err != nil {
		return "", err
	}
	return top.Name(), nil
}

// Depth returns the number of pools on the stack.
func (e *Engine) Depth() int {
	return e.stack.Size()
}

// Pools returns the active pools from bottom to top.
func (e *Engine) Pools() []domain.Pool {
	return e.stack.Snapshot()
}

// Commands returns the current command table entries.
func (e *Engine) Commands() []domain.Command {
	return e.table.Commands()
}

// Table returns the current command table.
func (e *Engine) Table() *registry.Table {
	return e.table
}

// Codec returns the name codec.
func (e *Engine) Codec() naming.Codec {
	return e.codec
}

// Output returns the engine's output writer.
func (e *Engine) Output() io.Writer {
	return e.out
}

// ReadLine reads the next line from the configured source.
func (e *Engine) ReadLine(ctx context.Context) (string, error) {
	if e.source == nil {
		return "", domain.ErrEndOfInput
	}
	return e.source.ReadLine(ctx)
}

func (e *Engine) warnShadowed(ctx context.Context, p domain.Pool, table *registry.Table) {
	for _, c := range table.Shadowed() {
		e.logger.Warn("pool command shadows built-in",
			"pool", p.Name(),
			"command", e.codec.Externalize(c.Name),
			"arity", c.Arity.String(),
		)
		if e.hooks.OnShadow != nil {
			e.hooks.OnShadow(ctx, &domain.ShadowEvent{
				EventBase: e.eventBase(domain.EventShadow),
				Pool:      p.Name(),
				Command:   c.Name,
				Arity:     c.Arity,
			})
		}
	}
}

func (e *Engine) emitPool(ctx context.Context, typ domain.EventType, hook func(context.Context, *domain.PoolEvent), p domain.Pool) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.PoolEvent{
		EventBase: e.eventBase(typ),
		Pool:      p.Name(),
		Depth:     e.stack.Size(),
	})
}

func (e *Engine) eventBase(typ domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      typ,
		EngineID:  e.id,
	}
}
