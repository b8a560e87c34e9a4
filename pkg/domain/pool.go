package domain

import (
	"context"
	"io"

	"github.com/aretw0/clif/pkg/naming"
)

// Pool is a named bundle of commands with its own lifecycle.
//
// A pool is pushed onto the engine's stack to become the focused mode. Only
// the top pool receives input; pools below it are inert until they regain
// focus.
type Pool interface {
	// Name is the display name used by "current-pool" and exit reports.
	Name() string

	// Commands returns the commands the pool declares, in declaration order.
	Commands() []Command

	// OnStart is called every time the pool is pushed, after the command
	// table has been rebuilt for it.
	OnStart(ctx context.Context, c Controller)

	// OnResume is called when the pool regains focus because the pool above
	// it was exited.
	OnResume(ctx context.Context, c Controller)

	// OnExit is called exactly once when the pool is removed from the stack.
	OnExit(ctx context.Context, c Controller)

	// OnEnd is reserved for process-wide teardown. The engine never calls it;
	// pools should release their resources in OnExit.
	OnEnd(ctx context.Context)
}

// Controller is the engine surface handed to lifecycle hooks and command
// handlers. Handlers run with exclusive access to it.
type Controller interface {
	// Push places a pool on top of the stack and starts it.
	Push(ctx context.Context, p Pool) error

	// Exit removes the current pool, resuming the one below it.
	Exit(ctx context.Context) error

	// ExitAll removes every pool, top to bottom.
	ExitAll(ctx context.Context) error

	// Refresh rebuilds the command table for the current pool.
	Refresh() error

	// Current returns the focused pool.
	Current() (Pool, error)

	// PoolName returns the display name of the focused pool.
	PoolName() (string, error)

	// Depth returns the number of pools on the stack.
	Depth() int

	// Pools returns the active pools from bottom to top.
	Pools() []Pool

	// Commands returns the commands that are invocable right now.
	Commands() []Command

	// Codec translates between typed tokens and internal command names.
	Codec() naming.Codec

	// Output is where command output should be written.
	Output() io.Writer

	// ReadLine reads the next line from the engine's input source.
	ReadLine(ctx context.Context) (string, error)
}

// NopHooks implements the lifecycle half of Pool with no-ops.
// Embed it in a pool type to override only the hooks you need.
type NopHooks struct{}

func (NopHooks) OnStart(context.Context, Controller)  {}
func (NopHooks) OnResume(context.Context, Controller) {}
func (NopHooks) OnExit(context.Context, Controller)   {}
func (NopHooks) OnEnd(context.Context)                {}

// PoolHooks holds optional lifecycle callbacks for pools built with NewPool.
type PoolHooks struct {
	OnStart  func(ctx context.Context, c Controller)
	OnResume func(ctx context.Context, c Controller)
	OnExit   func(ctx context.Context, c Controller)
	OnEnd    func(ctx context.Context)
}

// StaticPool is a Pool assembled from a name, a fixed command list and
// optional callbacks.
type StaticPool struct {
	name     string
	commands []Command
	hooks    PoolHooks
}

// NewPool creates a pool with the given commands and hooks.
func NewPool(name string, hooks PoolHooks, commands ...Command) *StaticPool {
	return &StaticPool{
		name:     name,
		commands: commands,
		hooks:    hooks,
	}
}

func (p *StaticPool) Name() string { return p.name }

// Commands returns a copy of the declared commands.
func (p *StaticPool) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

func (p *StaticPool) OnStart(ctx context.Context, c Controller) {
	if p.hooks.OnStart != nil {
		p.hooks.OnStart(ctx, c)
	}
}

func (p *StaticPool) OnResume(ctx context.Context, c Controller) {
	if p.hooks.OnResume != nil {
		p.hooks.OnResume(ctx, c)
	}
}

func (p *StaticPool) OnExit(ctx context.Context, c Controller) {
	if p.hooks.OnExit != nil {
		p.hooks.OnExit(ctx, c)
	}
}

func (p *StaticPool) OnEnd(ctx context.Context) {
	if p.hooks.OnEnd != nil {
		p.hooks.OnEnd(ctx)
	}
}
